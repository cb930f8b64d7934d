package colorkit

import "encoding/json"

// CMYK is a color in the subtractive CMYK model. Every component is a
// percentage in [0, 100].
type CMYK struct {
	c, m, y, k float64
}

// NewCMYK returns a CMYK value with each component clamped to [0, 100].
// NaN components become 0.
func NewCMYK(cyan, magenta, yellow, key float64) CMYK {
	return CMYK{
		c: clamp(cyan, 0, 100),
		m: clamp(magenta, 0, 100),
		y: clamp(yellow, 0, 100),
		k: clamp(key, 0, 100),
	}
}

// Cyan returns the cyan percentage.
func (c CMYK) Cyan() float64 { return c.c }

// Magenta returns the magenta percentage.
func (c CMYK) Magenta() float64 { return c.m }

// Yellow returns the yellow percentage.
func (c CMYK) Yellow() float64 { return c.y }

// Key returns the key (black) percentage.
func (c CMYK) Key() float64 { return c.k }

// WithCyan returns a copy of c with the cyan component replaced and re-clamped.
func (c CMYK) WithCyan(v float64) CMYK { return NewCMYK(v, c.m, c.y, c.k) }

// WithMagenta returns a copy of c with the magenta component replaced and re-clamped.
func (c CMYK) WithMagenta(v float64) CMYK { return NewCMYK(c.c, v, c.y, c.k) }

// WithYellow returns a copy of c with the yellow component replaced and re-clamped.
func (c CMYK) WithYellow(v float64) CMYK { return NewCMYK(c.c, c.m, v, c.k) }

// WithKey returns a copy of c with the key component replaced and re-clamped.
func (c CMYK) WithKey(v float64) CMYK { return NewCMYK(c.c, c.m, c.y, v) }

// Equal reports whether all components are exactly equal.
func (c CMYK) Equal(o CMYK) bool {
	return c.c == o.c && c.m == o.m && c.y == o.y && c.k == o.k
}

// String renders the value as "(C: 0; M: 100; Y: 100; K: 0)".
func (c CMYK) String() string {
	return describe([]string{"C", "M", "Y", "K"}, c.c, c.m, c.y, c.k)
}

// ToRGB converts to RGB.
func (c CMYK) ToRGB() RGB {
	cy, m, y, k := c.c/100, c.m/100, c.y/100, c.k/100
	return NewRGB(
		255*(1-cy)*(1-k),
		255*(1-m)*(1-k),
		255*(1-y)*(1-k),
	)
}

// ToHex converts through RGB.
func (c CMYK) ToHex() Hex { return c.ToRGB().ToHex() }

// ToHSV converts through RGB.
func (c CMYK) ToHSV() HSV { return c.ToRGB().ToHSV() }

// ToHSL converts through RGB.
func (c CMYK) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToCMYK returns c unchanged.
func (c CMYK) ToCMYK() CMYK { return c }

// MarshalJSON encodes the value as {"c":..,"m":..,"y":..,"k":..}.
func (c CMYK) MarshalJSON() ([]byte, error) {
	return json.Marshal(cmykJSON{C: c.c, M: c.m, Y: c.y, K: c.k})
}

// UnmarshalJSON decodes {"c":..,"m":..,"y":..,"k":..}, clamping like NewCMYK.
func (c *CMYK) UnmarshalJSON(data []byte) error {
	var v cmykJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = NewCMYK(v.C, v.M, v.Y, v.K)
	return nil
}

type cmykJSON struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}
