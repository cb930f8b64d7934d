package colorkit

import (
	"strings"

	"github.com/samber/lo"
)

// Scheme is an ordered set of colors, usually derived from one base color.
type Scheme struct {
	colors []Color
}

// NewScheme returns a scheme holding colors in the given order.
func NewScheme(colors ...Color) Scheme {
	return Scheme{colors: append([]Color(nil), colors...)}
}

// Len returns the number of colors in the scheme.
func (s Scheme) Len() int { return len(s.colors) }

// At returns the i-th color. It panics if i is out of range.
func (s Scheme) At(i int) Color { return s.colors[i] }

// Colors returns a copy of the scheme's colors.
func (s Scheme) Colors() []Color {
	return append([]Color(nil), s.colors...)
}

// Equal reports whether both schemes have the same length and pairwise equal
// colors in the same order.
func (s Scheme) Equal(o Scheme) bool {
	if len(s.colors) != len(o.colors) {
		return false
	}
	for i := range s.colors {
		if !s.colors[i].Equal(o.colors[i]) {
			return false
		}
	}
	return true
}

// String joins the colors' string forms with "; ".
func (s Scheme) String() string {
	return strings.Join(lo.Map(s.colors, func(c Color, _ int) string {
		return c.String()
	}), "; ")
}

// RGB returns every color in the RGB model.
func (s Scheme) RGB() []RGB {
	return lo.Map(s.colors, func(c Color, _ int) RGB { return c.ToRGB() })
}

// Hex returns every color in hexadecimal form.
func (s Scheme) Hex() []Hex {
	return lo.Map(s.colors, func(c Color, _ int) Hex { return c.ToHex() })
}

// HSV returns every color in the HSV model.
func (s Scheme) HSV() []HSV {
	return lo.Map(s.colors, func(c Color, _ int) HSV { return c.ToHSV() })
}

// HSL returns every color in the HSL model.
func (s Scheme) HSL() []HSL {
	return lo.Map(s.colors, func(c Color, _ int) HSL { return c.ToHSL() })
}

// CMYK returns every color in the CMYK model.
func (s Scheme) CMYK() []CMYK {
	return lo.Map(s.colors, func(c Color, _ int) CMYK { return c.ToCMYK() })
}

// Convert returns every color in model m.
func (s Scheme) Convert(m Model) ([]Converter, error) {
	out := make([]Converter, 0, len(s.colors))
	for _, c := range s.colors {
		v, err := Convert(c, m)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Summaries describes every color in every model.
func (s Scheme) Summaries() []Summary {
	return lo.Map(s.colors, func(c Color, _ int) Summary { return Describe(c) })
}
