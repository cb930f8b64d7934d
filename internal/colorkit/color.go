package colorkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Converter is implemented by every color representation. Each method returns
// the same color in another model; converting to the receiver's own model
// returns an equivalent value.
type Converter interface {
	ToRGB() RGB
	ToHex() Hex
	ToHSV() HSV
	ToHSL() HSL
	ToCMYK() CMYK
}

// Color is a representation-agnostic color. It always holds the RGB form of
// whatever it was built from, so the source model's own rounding is lost.
type Color struct {
	rgb RGB
}

// New wraps any representation, converting it to RGB immediately.
func New(c Converter) Color {
	if col, ok := c.(Color); ok {
		return col
	}
	return Color{rgb: c.ToRGB()}
}

// ToRGB returns the wrapped RGB value.
func (c Color) ToRGB() RGB { return c.rgb }

// ToHex forwards to the wrapped RGB value.
func (c Color) ToHex() Hex { return c.rgb.ToHex() }

// ToHSV forwards to the wrapped RGB value.
func (c Color) ToHSV() HSV { return c.rgb.ToHSV() }

// ToHSL forwards to the wrapped RGB value.
func (c Color) ToHSL() HSL { return c.rgb.ToHSL() }

// ToCMYK forwards to the wrapped RGB value.
func (c Color) ToCMYK() CMYK { return c.rgb.ToCMYK() }

// Equal reports whether both colors wrap equal RGB values.
func (c Color) Equal(o Color) bool { return c.rgb.Equal(o.rgb) }

// String renders the wrapped RGB value.
func (c Color) String() string { return c.rgb.String() }

// MarshalJSON encodes the color as its RGB object.
func (c Color) MarshalJSON() ([]byte, error) { return json.Marshal(c.rgb) }

// Model names one of the supported color models.
type Model string

// Supported color models.
const (
	ModelRGB  Model = "rgb"
	ModelHex  Model = "hex"
	ModelHSV  Model = "hsv"
	ModelHSL  Model = "hsl"
	ModelCMYK Model = "cmyk"
)

// Models lists every supported model in display order.
var Models = []Model{ModelRGB, ModelHex, ModelHSV, ModelHSL, ModelCMYK}

var (
	// ErrUnknownModel is returned when a model name is not recognized.
	ErrUnknownModel = errors.New("unknown color model")

	// ErrComponentCount is returned when a component slice has the wrong length
	// for its model.
	ErrComponentCount = errors.New("wrong number of color components")
)

// ParseModel maps a case-insensitive name to a Model.
func ParseModel(name string) (Model, error) {
	m := Model(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case ModelRGB, ModelHex, ModelHSV, ModelHSL, ModelCMYK:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Arity returns the number of numeric components the model takes. Hex has none.
func (m Model) Arity() int {
	switch m {
	case ModelRGB, ModelHSV, ModelHSL:
		return 3
	case ModelCMYK:
		return 4
	}
	return 0
}

// FromComponents builds a value of the given numeric model from its
// components in declaration order, e.g. (r, g, b) or (c, m, y, k).
//
// Out-of-range components are clamped as the model's constructor does; only a
// wrong component count or a non-numeric model is an error.
func FromComponents(m Model, values []float64) (Converter, error) {
	n := m.Arity()
	if n == 0 {
		return nil, fmt.Errorf("%w: %q has no numeric components", ErrUnknownModel, m)
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrComponentCount, m, n, len(values))
	}

	switch m {
	case ModelRGB:
		return NewRGB(values[0], values[1], values[2]), nil
	case ModelHSV:
		return NewHSV(values[0], values[1], values[2]), nil
	case ModelHSL:
		return NewHSL(values[0], values[1], values[2]), nil
	default:
		return NewCMYK(values[0], values[1], values[2], values[3]), nil
	}
}

// Convert returns c in the requested model.
func Convert(c Converter, m Model) (Converter, error) {
	switch m {
	case ModelRGB:
		return c.ToRGB(), nil
	case ModelHex:
		return c.ToHex(), nil
	case ModelHSV:
		return c.ToHSV(), nil
	case ModelHSL:
		return c.ToHSL(), nil
	case ModelCMYK:
		return c.ToCMYK(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, m)
}

// Summary holds one color in every supported model.
type Summary struct {
	Hex  Hex  `json:"hex"`
	RGB  RGB  `json:"rgb"`
	HSV  HSV  `json:"hsv"`
	HSL  HSL  `json:"hsl"`
	CMYK CMYK `json:"cmyk"`
}

// Describe converts c into every model at once.
func Describe(c Converter) Summary {
	return Summary{
		Hex:  c.ToHex(),
		RGB:  c.ToRGB(),
		HSV:  c.ToHSV(),
		HSL:  c.ToHSL(),
		CMYK: c.ToCMYK(),
	}
}
