package colorkit

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares color values component-wise within margin.
func approx(margin float64) cmp.Options {
	return cmp.Options{
		cmp.Transformer("RGB", func(c RGB) [3]float64 { return [3]float64{c.r, c.g, c.b} }),
		cmp.Transformer("HSV", func(c HSV) [3]float64 { return [3]float64{c.h, c.s, c.v} }),
		cmp.Transformer("HSL", func(c HSL) [3]float64 { return [3]float64{c.h, c.s, c.l} }),
		cmp.Transformer("CMYK", func(c CMYK) [4]float64 { return [4]float64{c.c, c.m, c.y, c.k} }),
		cmp.Transformer("Hex", func(c Hex) string { return c.Value() }),
		cmp.Transformer("Color", func(c Color) RGB { return c.rgb }),
		cmp.Transformer("Scheme", func(s Scheme) []Color { return s.colors }),
		cmpopts.EquateApprox(0, margin),
	}
}

// exact compares color values component-wise with no tolerance.
var exact = approx(0)

// hueDelta returns the angular distance between two hues in degrees.
func hueDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}
