package colorkit

import "math/rand/v2"

// Sampler draws uniformly distributed colors within each model's domain.
// Intended for test data, not conversion logic.
//
// A Sampler built with NewSampler is deterministic and not safe for concurrent
// use. The zero Sampler draws from the global source and is safe for
// concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded for reproducible sequences.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Sampler) float(max float64) float64 {
	if s == nil || s.rng == nil {
		return rand.Float64() * max
	}
	return s.rng.Float64() * max
}

func (s *Sampler) digit() int {
	if s == nil || s.rng == nil {
		return rand.IntN(16)
	}
	return s.rng.IntN(16)
}

// RGB returns a random RGB value.
func (s *Sampler) RGB() RGB {
	return NewRGB(s.float(255), s.float(255), s.float(255))
}

// HSV returns a random HSV value.
func (s *Sampler) HSV() HSV {
	return NewHSV(s.float(360), s.float(100), s.float(100))
}

// HSL returns a random HSL value.
func (s *Sampler) HSL() HSL {
	return NewHSL(s.float(360), s.float(100), s.float(100))
}

// CMYK returns a random CMYK value.
func (s *Sampler) CMYK() CMYK {
	return NewCMYK(s.float(100), s.float(100), s.float(100), s.float(100))
}

// Hex returns a random six-digit Hex value.
func (s *Sampler) Hex() Hex {
	const digits = "0123456789ABCDEF"
	buf := make([]byte, 6)
	for i := range buf {
		buf[i] = digits[s.digit()]
	}
	return NewHex(string(buf))
}

// Sample returns a random value in model m.
func (s *Sampler) Sample(m Model) (Converter, error) {
	switch m {
	case ModelRGB:
		return s.RGB(), nil
	case ModelHex:
		return s.Hex(), nil
	case ModelHSV:
		return s.HSV(), nil
	case ModelHSL:
		return s.HSL(), nil
	case ModelCMYK:
		return s.CMYK(), nil
	}
	return nil, ErrUnknownModel
}

var global Sampler

// RandomRGB returns a random RGB value from the global source.
func RandomRGB() RGB { return global.RGB() }

// RandomHSV returns a random HSV value from the global source.
func RandomHSV() HSV { return global.HSV() }

// RandomHSL returns a random HSL value from the global source.
func RandomHSL() HSL { return global.HSL() }

// RandomCMYK returns a random CMYK value from the global source.
func RandomCMYK() CMYK { return global.CMYK() }

// RandomHex returns a random Hex value from the global source.
func RandomHex() Hex { return global.Hex() }
