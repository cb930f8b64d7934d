package colorkit

import (
	"math"
	"strconv"
	"strings"
)

// rgbPrecision is the number of decimal places RGB channels are rounded to.
const rgbPrecision = 3

// RoundTo rounds value to the given number of decimal places.
//
// Rounding is half away from zero, matching math.Round. A negative precision
// rounds to tens, hundreds and so on.
func RoundTo(value float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(value*p) / p
}

// clamp forces v into [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// channels returns the largest and smallest of three normalized channels.
func channels(r, g, b float64) (cmax, cmin float64) {
	return math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
}

// hueOf computes the hue in degrees for normalized channels whose extremes
// differ by diff. Callers handle the achromatic case (diff == 0).
func hueOf(r, g, b, cmax, diff float64) float64 {
	switch cmax {
	case r:
		return math.Mod(60*((g-b)/diff)+360, 360)
	case g:
		return math.Mod(60*((b-r)/diff)+120, 360)
	default:
		return math.Mod(60*((r-g)/diff)+240, 360)
	}
}

// formatComponent renders a float without trailing zeros ("255", "21.5").
func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// describe renders labeled components as "(A: 1; B: 2)".
func describe(labels []string, values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = labels[i] + ": " + formatComponent(v)
	}
	return "(" + strings.Join(parts, "; ") + ")"
}
