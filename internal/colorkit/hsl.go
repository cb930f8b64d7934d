package colorkit

import (
	"encoding/json"
	"math"
)

// HSL is a color in the HSL (Hue, Saturation, Lightness) model.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (0-360 degrees)
//   - Saturation represents color intensity (0-100 percent)
//   - Lightness represents brightness (0=black, 50=normal, 100=white)
type HSL struct {
	h, s, l float64
}

// NewHSL returns an HSL value with hue clamped to [0, 360] and saturation and
// lightness clamped to [0, 100]. NaN components become 0.
func NewHSL(hue, saturation, lightness float64) HSL {
	return HSL{
		h: clamp(hue, 0, 360),
		s: clamp(saturation, 0, 100),
		l: clamp(lightness, 0, 100),
	}
}

// Hue returns the hue in degrees.
func (c HSL) Hue() float64 { return c.h }

// Saturation returns the saturation percentage.
func (c HSL) Saturation() float64 { return c.s }

// Lightness returns the lightness percentage.
func (c HSL) Lightness() float64 { return c.l }

// WithHue returns a copy of c with the hue replaced and re-clamped.
func (c HSL) WithHue(v float64) HSL { return NewHSL(v, c.s, c.l) }

// WithSaturation returns a copy of c with the saturation replaced and re-clamped.
func (c HSL) WithSaturation(v float64) HSL { return NewHSL(c.h, v, c.l) }

// WithLightness returns a copy of c with the lightness replaced and re-clamped.
func (c HSL) WithLightness(v float64) HSL { return NewHSL(c.h, c.s, v) }

// Equal reports whether all components are exactly equal.
func (c HSL) Equal(o HSL) bool {
	return c.h == o.h && c.s == o.s && c.l == o.l
}

// String renders the value as "(H: 0; S: 100; L: 50)".
func (c HSL) String() string {
	return describe([]string{"H", "S", "L"}, c.h, c.s, c.l)
}

// ToRGB converts to RGB via chroma, the intermediate component x and the
// lightness match m. The result is rounded to three decimals.
func (c HSL) ToRGB() RGB {
	s := c.s / 100
	l := c.l / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(c.h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch h := math.Mod(c.h, 360); {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return NewRGB(
		RoundTo((r+m)*255, rgbPrecision),
		RoundTo((g+m)*255, rgbPrecision),
		RoundTo((b+m)*255, rgbPrecision),
	)
}

// ToHex converts through RGB.
func (c HSL) ToHex() Hex { return c.ToRGB().ToHex() }

// ToHSV converts through RGB.
func (c HSL) ToHSV() HSV { return c.ToRGB().ToHSV() }

// ToHSL returns c unchanged.
func (c HSL) ToHSL() HSL { return c }

// ToCMYK converts through RGB.
func (c HSL) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// MarshalJSON encodes the value as {"h":..,"s":..,"l":..}.
func (c HSL) MarshalJSON() ([]byte, error) {
	return json.Marshal(hslJSON{H: c.h, S: c.s, L: c.l})
}

// UnmarshalJSON decodes {"h":..,"s":..,"l":..}, clamping like NewHSL.
func (c *HSL) UnmarshalJSON(data []byte) error {
	var v hslJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = NewHSL(v.H, v.S, v.L)
	return nil
}

type hslJSON struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}
