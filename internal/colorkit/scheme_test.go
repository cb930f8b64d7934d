package colorkit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScheme_Equal(t *testing.T) {
	red := New(NewRGB(255, 0, 0))
	green := New(NewRGB(0, 255, 0))
	blue := New(NewRGB(0, 0, 255))

	tests := []struct {
		name string
		a, b Scheme
		want bool
	}{
		{"same", NewScheme(red, green), NewScheme(red, green), true},
		{"same from other models", NewScheme(red, green), NewScheme(New(NewHex("F00")), New(NewHSL(120, 100, 50))), true},
		{"different order", NewScheme(red, green), NewScheme(green, red), false},
		{"different length", NewScheme(red, green), NewScheme(red, green, blue), false},
		{"prefix", NewScheme(red), NewScheme(red, red), false},
		{"both empty", NewScheme(), NewScheme(), true},
		{"different color", NewScheme(red, green), NewScheme(red, blue), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal: got %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal (reversed): got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheme_BulkConversions(t *testing.T) {
	s := Complementary(New(NewRGB(255, 0, 0)))

	if diff := cmp.Diff([]RGB{NewRGB(255, 0, 0), NewRGB(0, 255, 255)}, s.RGB(), exact); diff != "" {
		t.Errorf("RGB mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Hex{NewHex("FF0000"), NewHex("00FFFF")}, s.Hex(), exact); diff != "" {
		t.Errorf("Hex mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]HSV{NewHSV(0, 100, 100), NewHSV(180, 100, 100)}, s.HSV(), exact); diff != "" {
		t.Errorf("HSV mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]HSL{NewHSL(0, 100, 50), NewHSL(180, 100, 50)}, s.HSL(), exact); diff != "" {
		t.Errorf("HSL mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]CMYK{NewCMYK(0, 100, 100, 0), NewCMYK(100, 0, 0, 0)}, s.CMYK(), exact); diff != "" {
		t.Errorf("CMYK mismatch (-want +got):\n%s", diff)
	}

	got, err := s.Convert(ModelHex)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if diff := cmp.Diff([]Converter{NewHex("FF0000"), NewHex("00FFFF")}, got, exact); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.Convert(Model("lab")); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("Convert(lab): got err %v, want ErrUnknownModel", err)
	}

	if sums := s.Summaries(); len(sums) != 2 || sums[1].Hex.Value() != "00FFFF" {
		t.Errorf("Summaries: got %+v", sums)
	}
}

func TestScheme_String(t *testing.T) {
	s := Complementary(New(NewRGB(255, 0, 0)))
	if got, want := s.String(), "(R: 255; G: 0; B: 0); (R: 0; G: 255; B: 255)"; got != want {
		t.Errorf("String: got %s, want %s", got, want)
	}
	if got := NewScheme().String(); got != "" {
		t.Errorf("empty String: got %q", got)
	}
}

func TestScheme_ColorsIsACopy(t *testing.T) {
	red := New(NewRGB(255, 0, 0))
	s := NewScheme(red)

	colors := s.Colors()
	colors[0] = New(NewRGB(0, 0, 0))
	if !s.At(0).Equal(red) {
		t.Error("modifying Colors() changed the scheme")
	}

	in := []Color{red}
	s = NewScheme(in...)
	in[0] = New(NewRGB(0, 0, 0))
	if !s.At(0).Equal(red) {
		t.Error("modifying the input slice changed the scheme")
	}
}
