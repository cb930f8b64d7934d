package colorkit

import (
	"encoding/json"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_StoresRGB(t *testing.T) {
	tests := []struct {
		name string
		in   Converter
		want RGB
	}{
		{"rgb", NewRGB(132, 48, 1), NewRGB(132, 48, 1)},
		{"hex", NewHex("843001"), NewRGB(132, 48, 1)},
		{"hsv", NewHSV(0, 100, 100), NewRGB(255, 0, 0)},
		{"hsl", NewHSL(120, 100, 50), NewRGB(0, 255, 0)},
		{"cmyk", NewCMYK(100, 100, 0, 0), NewRGB(0, 0, 255)},
		{"color", New(NewRGB(1, 2, 3)), NewRGB(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.in)
			if diff := cmp.Diff(tt.want, c.ToRGB(), exact); diff != "" {
				t.Errorf("New mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColor_Forwards(t *testing.T) {
	rgb := NewRGB(140, 9, 142)
	c := New(NewHex("8C098E"))

	if diff := cmp.Diff(rgb.ToHex(), c.ToHex(), exact); diff != "" {
		t.Errorf("ToHex mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rgb.ToHSV(), c.ToHSV(), exact); diff != "" {
		t.Errorf("ToHSV mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rgb.ToHSL(), c.ToHSL(), exact); diff != "" {
		t.Errorf("ToHSL mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rgb.ToCMYK(), c.ToCMYK(), exact); diff != "" {
		t.Errorf("ToCMYK mismatch (-want +got):\n%s", diff)
	}
	if got, want := c.String(), "(R: 140; G: 9; B: 142)"; got != want {
		t.Errorf("String: got %s, want %s", got, want)
	}
}

func TestColor_Equal(t *testing.T) {
	red := New(NewRGB(255, 0, 0))

	if !red.Equal(New(NewHex("F00"))) {
		t.Error("red from RGB should equal red from Hex")
	}
	if !red.Equal(New(NewHSV(0, 100, 100))) {
		t.Error("red from RGB should equal red from HSV")
	}
	if red.Equal(New(NewRGB(254, 0, 0))) {
		t.Error("254,0,0 should not equal 255,0,0")
	}
}

func TestNaNCollapsesToZero(t *testing.T) {
	nan := math.NaN()

	if got := NewRGB(nan, 10, nan); !got.Equal(NewRGB(0, 10, 0)) {
		t.Errorf("RGB: got %v", got)
	}
	if got := NewHSV(nan, nan, 50); !got.Equal(NewHSV(0, 0, 50)) {
		t.Errorf("HSV: got %v", got)
	}
	if got := NewHSL(10, nan, nan); !got.Equal(NewHSL(10, 0, 0)) {
		t.Errorf("HSL: got %v", got)
	}
	if got := NewCMYK(nan, nan, nan, nan); !got.Equal(NewCMYK(0, 0, 0, 0)) {
		t.Errorf("CMYK: got %v", got)
	}
}

func TestWithSetters(t *testing.T) {
	rgb := NewRGB(10, 20, 30)
	if got := rgb.WithRed(300).WithGreen(-1).WithBlue(1.23456); !got.Equal(NewRGB(255, 0, 1.235)) {
		t.Errorf("RGB setters: got %v", got)
	}
	if !rgb.Equal(NewRGB(10, 20, 30)) {
		t.Errorf("RGB setters mutated the receiver: %v", rgb)
	}

	hsv := NewHSV(10, 20, 30)
	if got := hsv.WithHue(720).WithSaturation(50).WithValue(math.NaN()); !got.Equal(NewHSV(360, 50, 0)) {
		t.Errorf("HSV setters: got %v", got)
	}

	hsl := NewHSL(10, 20, 30)
	if got := hsl.WithHue(-5).WithSaturation(101).WithLightness(40); !got.Equal(NewHSL(0, 100, 40)) {
		t.Errorf("HSL setters: got %v", got)
	}

	cmyk := NewCMYK(1, 2, 3, 4)
	if got := cmyk.WithCyan(50).WithMagenta(-3).WithYellow(200).WithKey(25); !got.Equal(NewCMYK(50, 0, 100, 25)) {
		t.Errorf("CMYK setters: got %v", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{ String() string }
		want string
	}{
		{"rgb", NewRGB(255, 0, 0), "(R: 255; G: 0; B: 0)"},
		{"hsv", NewHSV(21.5, 99, 51.75), "(H: 21.5; S: 99; V: 51.75)"},
		{"hsl", NewHSL(0, 100, 50), "(H: 0; S: 100; L: 50)"},
		{"cmyk", NewCMYK(0, 100, 100, 0), "(C: 0; M: 100; Y: 100; K: 0)"},
		{"hex", NewHex("ff0000"), "(#FF0000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGB_ImplementsColorColor(t *testing.T) {
	var c color.Color = NewRGB(255, 128, 0.4)
	got := color.RGBAModel.Convert(c).(color.RGBA)
	if want := (color.RGBA{R: 255, G: 128, B: 0, A: 255}); got != want {
		t.Errorf("RGBA: got %v, want %v", got, want)
	}
}

func TestJSON(t *testing.T) {
	s := Describe(NewRGB(255, 0, 0))

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"hex":"#FF0000","rgb":{"r":255,"g":0,"b":0},"hsv":{"h":0,"s":100,"v":100},` +
		`"hsl":{"h":0,"s":100,"l":50},"cmyk":{"c":0,"m":100,"y":100,"k":0}}`
	if string(data) != want {
		t.Errorf("Marshal:\ngot  %s\nwant %s", data, want)
	}

	var back Summary
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(s, back, exact); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_UnmarshalClamps(t *testing.T) {
	var rgb RGB
	if err := json.Unmarshal([]byte(`{"r":300,"g":-4,"b":1.23456}`), &rgb); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !rgb.Equal(NewRGB(255, 0, 1.235)) {
		t.Errorf("RGB: got %v", rgb)
	}

	var hex Hex
	if err := json.Unmarshal([]byte(`"#f00"`), &hex); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if hex.Value() != "FF0000" {
		t.Errorf("Hex: got %s", hex.Value())
	}

	if err := json.Unmarshal([]byte(`12`), &hex); err == nil {
		t.Error("Hex should reject a JSON number")
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		input   string
		want    Model
		wantErr bool
	}{
		{"rgb", ModelRGB, false},
		{"HSV", ModelHSV, false},
		{" hsl ", ModelHSL, false},
		{"Cmyk", ModelCMYK, false},
		{"hex", ModelHex, false},
		{"lab", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseModel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownModel) {
					t.Errorf("ParseModel(%q): got err %v, want ErrUnknownModel", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModel(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseModel(%q): got %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromComponents(t *testing.T) {
	tests := []struct {
		name    string
		model   Model
		values  []float64
		want    Converter
		wantErr error
	}{
		{"rgb", ModelRGB, []float64{255, 0, 0}, NewRGB(255, 0, 0), nil},
		{"hsv clamps", ModelHSV, []float64{400, 50, 50}, NewHSV(360, 50, 50), nil},
		{"hsl", ModelHSL, []float64{120, 100, 50}, NewHSL(120, 100, 50), nil},
		{"cmyk", ModelCMYK, []float64{0, 100, 100, 0}, NewCMYK(0, 100, 100, 0), nil},
		{"too few", ModelRGB, []float64{1, 2}, nil, ErrComponentCount},
		{"too many", ModelCMYK, []float64{1, 2, 3, 4, 5}, nil, ErrComponentCount},
		{"hex has no components", ModelHex, []float64{1, 2, 3}, nil, ErrUnknownModel},
		{"unknown", Model("lab"), []float64{1, 2, 3}, nil, ErrUnknownModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromComponents(tt.model, tt.values)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got err %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromComponents failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, exact); diff != "" {
				t.Errorf("FromComponents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_UnknownModel(t *testing.T) {
	if _, err := Convert(NewRGB(0, 0, 0), Model("xyz")); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("got err %v, want ErrUnknownModel", err)
	}
}
