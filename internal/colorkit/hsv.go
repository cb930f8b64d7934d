package colorkit

import (
	"encoding/json"
	"math"
)

// HSV is a color in the HSV (Hue, Saturation, Value) model.
//
//   - Hue: 0-360 degrees (0=red, 120=green, 240=blue)
//   - Saturation: 0-100 percent (0=gray, 100=vivid)
//   - Value: 0-100 percent (0=black, 100=full brightness)
type HSV struct {
	h, s, v float64
}

// NewHSV returns an HSV value with hue clamped to [0, 360] and saturation and
// value clamped to [0, 100]. NaN components become 0.
func NewHSV(hue, saturation, value float64) HSV {
	return HSV{
		h: clamp(hue, 0, 360),
		s: clamp(saturation, 0, 100),
		v: clamp(value, 0, 100),
	}
}

// Hue returns the hue in degrees.
func (c HSV) Hue() float64 { return c.h }

// Saturation returns the saturation percentage.
func (c HSV) Saturation() float64 { return c.s }

// Value returns the value (brightness) percentage.
func (c HSV) Value() float64 { return c.v }

// WithHue returns a copy of c with the hue replaced and re-clamped.
func (c HSV) WithHue(v float64) HSV { return NewHSV(v, c.s, c.v) }

// WithSaturation returns a copy of c with the saturation replaced and re-clamped.
func (c HSV) WithSaturation(v float64) HSV { return NewHSV(c.h, v, c.v) }

// WithValue returns a copy of c with the value replaced and re-clamped.
func (c HSV) WithValue(v float64) HSV { return NewHSV(c.h, c.s, v) }

// Equal reports whether all components are exactly equal.
func (c HSV) Equal(o HSV) bool {
	return c.h == o.h && c.s == o.s && c.v == o.v
}

// String renders the value as "(H: 0; S: 100; V: 100)".
func (c HSV) String() string {
	return describe([]string{"H", "S", "V"}, c.h, c.s, c.v)
}

// ToRGB converts to RGB using the six-sextant table. A hue of 360 falls in
// the same sextant as 0.
func (c HSV) ToRGB() RGB {
	s := c.s / 100
	v := c.v / 100

	sector := math.Floor(c.h / 60)
	f := c.h/60 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return NewRGB(r*255, g*255, b*255)
}

// ToHex converts through RGB.
func (c HSV) ToHex() Hex { return c.ToRGB().ToHex() }

// ToHSV returns c unchanged.
func (c HSV) ToHSV() HSV { return c }

// ToHSL converts through RGB.
func (c HSV) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToCMYK converts through RGB.
func (c HSV) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// MarshalJSON encodes the value as {"h":..,"s":..,"v":..}.
func (c HSV) MarshalJSON() ([]byte, error) {
	return json.Marshal(hsvJSON{H: c.h, S: c.s, V: c.v})
}

// UnmarshalJSON decodes {"h":..,"s":..,"v":..}, clamping like NewHSV.
func (c *HSV) UnmarshalJSON(data []byte) error {
	var v hsvJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = NewHSV(v.H, v.S, v.V)
	return nil
}

type hsvJSON struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}
