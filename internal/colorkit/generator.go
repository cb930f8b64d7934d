package colorkit

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// SchemeKind names a hue-rotation scheme.
type SchemeKind string

// Supported scheme kinds.
const (
	KindComplementary SchemeKind = "complementary"
	KindTriadic       SchemeKind = "triadic"
	KindTetradic      SchemeKind = "tetradic"
	KindAnalogous     SchemeKind = "analogous"
)

// SchemeKinds lists every supported kind.
var SchemeKinds = []SchemeKind{KindComplementary, KindTriadic, KindTetradic, KindAnalogous}

// ErrUnknownScheme is returned when a scheme kind is not recognized.
var ErrUnknownScheme = errors.New("unknown color scheme")

var schemeOffsets = map[SchemeKind][]float64{
	KindComplementary: {180},
	KindTriadic:       {120, 240},
	KindTetradic:      {90, 180, 270},
	KindAnalogous:     {30, 60, 90},
}

// ParseSchemeKind maps a case-insensitive name to a SchemeKind.
func ParseSchemeKind(name string) (SchemeKind, error) {
	k := SchemeKind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := schemeOffsets[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return k, nil
}

// Offsets returns the hue offsets, in degrees, applied to the base color.
func (k SchemeKind) Offsets() []float64 {
	return append([]float64(nil), schemeOffsets[k]...)
}

// Generate builds the scheme of the given kind around base.
func Generate(kind SchemeKind, base Color) (Scheme, error) {
	offsets, ok := schemeOffsets[kind]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, kind)
	}
	return Rotate(base, offsets...), nil
}

// Complementary returns base and the color opposite it on the hue wheel.
func Complementary(base Color) Scheme { return Rotate(base, schemeOffsets[KindComplementary]...) }

// Triadic returns base and the two colors 120 and 240 degrees away.
func Triadic(base Color) Scheme { return Rotate(base, schemeOffsets[KindTriadic]...) }

// Tetradic returns base and the colors 90, 180 and 270 degrees away.
func Tetradic(base Color) Scheme { return Rotate(base, schemeOffsets[KindTetradic]...) }

// Analogous returns base and the colors 30, 60 and 90 degrees away.
func Analogous(base Color) Scheme { return Rotate(base, schemeOffsets[KindAnalogous]...) }

// Rotate returns a scheme starting with base followed by one color per offset.
// Each derived color keeps the base's HSV saturation and value and has its hue
// shifted by the offset modulo 360.
func Rotate(base Color, offsets ...float64) Scheme {
	hsv := base.ToHSV()
	colors := make([]Color, 0, len(offsets)+1)
	colors = append(colors, base)
	for _, off := range offsets {
		colors = append(colors, New(hsv.WithHue(rotateHue(hsv.Hue(), off))))
	}
	return Scheme{colors: colors}
}

func rotateHue(h, offset float64) float64 {
	h = math.Mod(h+offset, 360)
	if h < 0 {
		h += 360
	}
	return h
}
