// Package colorkit converts colors between the RGB, HSV, HSL, CMYK and
// hexadecimal models and derives hue-rotation color schemes.
//
// # Models
//
// Each model is an immutable value type with validated components:
//   - RGB: red, green, blue in 0-255, rounded to three decimals
//   - HSV: hue 0-360, saturation and value 0-100
//   - HSL: hue 0-360, saturation and lightness 0-100
//   - CMYK: cyan, magenta, yellow, key in 0-100
//   - Hex: six uppercase hex digits
//
// Constructors never fail. Out-of-range numbers are clamped, NaN becomes the
// lower bound, and malformed hex strings are repaired (see NewHex). The With*
// methods return a new value and apply the same rules.
//
// # Conversion
//
// RGB is the hub. Every type implements Converter, and every conversion that
// does not start or end in RGB goes through it, so
//
//	hsv.ToCMYK() == hsv.ToRGB().ToCMYK()
//
// always holds. Achromatic colors get hue 0.
//
// Color wraps any representation by storing its RGB form. Schemes are ordered
// sets of Colors produced by Complementary, Triadic, Tetradic, Analogous or
// the general Rotate, which keep the base's HSV saturation and value and only
// shift the hue.
//
// # Thread Safety
//
// All value types are safe for concurrent use. A seeded Sampler is not; the
// package-level Random* helpers are.
package colorkit
