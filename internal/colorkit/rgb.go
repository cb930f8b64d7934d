package colorkit

import (
	"encoding/json"
	"fmt"
	"math"
)

// RGB is a color in the RGB model and the hub every other model converts through.
//
// Each channel is a float in [0, 255] rounded to three decimal places:
//   - 0 represents no intensity
//   - 255 represents full intensity
//
// The zero value is black.
type RGB struct {
	r, g, b float64
}

// NewRGB returns an RGB value with each channel rounded to three decimals and
// clamped to [0, 255]. NaN channels become 0.
func NewRGB(red, green, blue float64) RGB {
	return RGB{
		r: clampChannel(red),
		g: clampChannel(green),
		b: clampChannel(blue),
	}
}

func clampChannel(v float64) float64 {
	return clamp(RoundTo(v, rgbPrecision), 0, 255)
}

// Red returns the red channel (0-255).
func (c RGB) Red() float64 { return c.r }

// Green returns the green channel (0-255).
func (c RGB) Green() float64 { return c.g }

// Blue returns the blue channel (0-255).
func (c RGB) Blue() float64 { return c.b }

// WithRed returns a copy of c with the red channel replaced and re-clamped.
func (c RGB) WithRed(v float64) RGB { return NewRGB(v, c.g, c.b) }

// WithGreen returns a copy of c with the green channel replaced and re-clamped.
func (c RGB) WithGreen(v float64) RGB { return NewRGB(c.r, v, c.b) }

// WithBlue returns a copy of c with the blue channel replaced and re-clamped.
func (c RGB) WithBlue(v float64) RGB { return NewRGB(c.r, c.g, v) }

// Equal reports whether all three channels are exactly equal.
func (c RGB) Equal(o RGB) bool {
	return c.r == o.r && c.g == o.g && c.b == o.b
}

// String renders the value as "(R: 255; G: 0; B: 0)".
func (c RGB) String() string {
	return describe([]string{"R", "G", "B"}, c.r, c.g, c.b)
}

// ToRGB returns c unchanged.
func (c RGB) ToRGB() RGB { return c }

// ToHex rounds each channel to the nearest integer and formats it as two
// uppercase hex digits.
func (c RGB) ToHex() Hex {
	return NewHex(fmt.Sprintf("%02X%02X%02X", byteOf(c.r), byteOf(c.g), byteOf(c.b)))
}

// ToHSV converts to the HSV model.
//
// Achromatic colors (all channels equal) get hue 0. Black gets saturation 0.
func (c RGB) ToHSV() HSV {
	r, g, b := c.normalized()
	cmax, cmin := channels(r, g, b)
	diff := cmax - cmin

	var h, s float64
	if diff != 0 {
		h = hueOf(r, g, b, cmax, diff)
	}
	if cmax != 0 {
		s = diff / cmax * 100
	}
	return NewHSV(h, s, cmax*100)
}

// ToHSL converts to the HSL model.
//
// Achromatic colors get hue 0 and saturation 0.
func (c RGB) ToHSL() HSL {
	r, g, b := c.normalized()
	cmax, cmin := channels(r, g, b)
	diff := cmax - cmin
	l := (cmax + cmin) / 2

	var h, s float64
	if diff != 0 {
		s = diff / (1 - math.Abs(2*l-1))
		h = hueOf(r, g, b, cmax, diff)
	}
	return NewHSL(h, s*100, l*100)
}

// ToCMYK converts to the CMYK model. Pure black yields (0, 0, 0, 100).
func (c RGB) ToCMYK() CMYK {
	r, g, b := c.normalized()
	cmax, _ := channels(r, g, b)
	k := 1 - cmax
	if k == 1 {
		return NewCMYK(0, 0, 0, 100)
	}
	cy := (1 - r - k) / (1 - k)
	m := (1 - g - k) / (1 - k)
	y := (1 - b - k) / (1 - k)
	return NewCMYK(cy*100, m*100, y*100, k*100)
}

// RGBA implements image/color.Color. Channels are rounded to 8 bits and the
// color is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(byteOf(c.r))
	g = uint32(byteOf(c.g))
	b = uint32(byteOf(c.b))
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// MarshalJSON encodes the value as {"r":..,"g":..,"b":..}.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(rgbJSON{R: c.r, G: c.g, B: c.b})
}

// UnmarshalJSON decodes {"r":..,"g":..,"b":..}, clamping like NewRGB.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var v rgbJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = NewRGB(v.R, v.G, v.B)
	return nil
}

type rgbJSON struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (c RGB) normalized() (r, g, b float64) {
	return c.r / 255, c.g / 255, c.b / 255
}

func byteOf(v float64) uint8 {
	return uint8(math.Round(v))
}
