package colorkit

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Hex is a color written as six uppercase hexadecimal digits, "RRGGBB".
//
// Malformed input is repaired rather than rejected:
//   - surrounding whitespace and one leading '#' are dropped
//   - lowercase digits are uppercased
//   - any character outside 0-9A-F becomes 'F'
//   - three digits expand by doubling ("F80" -> "FF8800")
//   - any other length becomes "000000"
//
// The zero value is black, "000000".
type Hex struct {
	value string
}

// NewHex parses s into a Hex value using the repair rules above.
func NewHex(s string) Hex {
	return Hex{value: normalizeHex(s)}
}

// Value returns the six hex digits without a leading '#'.
func (c Hex) Value() string {
	if c.value == "" {
		return "000000"
	}
	return c.value
}

// WithHex returns a new Hex parsed from s with the same rules as NewHex.
func (c Hex) WithHex(s string) Hex { return NewHex(s) }

// Equal reports whether both values hold the same digits.
func (c Hex) Equal(o Hex) bool { return c.Value() == o.Value() }

// String renders the value as "(#RRGGBB)".
func (c Hex) String() string { return "(#" + c.Value() + ")" }

// ToRGB decodes the digits as a 24-bit integer and splits out the 8-bit fields.
func (c Hex) ToRGB() RGB {
	n, err := strconv.ParseUint(c.Value(), 16, 32)
	if err != nil {
		return RGB{}
	}
	return NewRGB(
		float64((n&0xFF0000)>>16),
		float64((n&0x00FF00)>>8),
		float64(n&0x0000FF),
	)
}

// ToHex returns c with its digits filled in.
func (c Hex) ToHex() Hex { return Hex{value: c.Value()} }

// ToHSV converts through RGB.
func (c Hex) ToHSV() HSV { return c.ToRGB().ToHSV() }

// ToHSL converts through RGB.
func (c Hex) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToCMYK converts through RGB.
func (c Hex) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// MarshalJSON encodes the value as "#RRGGBB".
func (c Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal("#" + c.Value())
}

// UnmarshalJSON decodes a JSON string with the same repair rules as NewHex.
func (c *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = NewHex(s)
	return nil
}

func normalizeHex(s string) string {
	s = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	digits := []byte(strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') {
			return r
		}
		return 'F'
	}, s))

	switch len(digits) {
	case 6:
		return string(digits)
	case 3:
		return string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	default:
		return "000000"
	}
}
