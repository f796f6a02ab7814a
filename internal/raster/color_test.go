package raster

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestColor_DefaultIsBlack(t *testing.T) {
	var c Color
	if c != Black() {
		t.Errorf("zero value: got %v, want %v", c, Black())
	}
	if Black().R != 0 || Black().G != 0 || Black().B != 0 {
		t.Errorf("Black: got %v, want (0,0,0)", Black())
	}
}

func TestColor_Accessors(t *testing.T) {
	c := NewColor(10, 20, 30)
	if c.Red() != 10 || c.Green() != 20 || c.Blue() != 30 {
		t.Errorf("accessors: got (%d,%d,%d), want (10,20,30)", c.Red(), c.Green(), c.Blue())
	}

	c.SetRed(200)
	c.SetGreen(100)
	c.SetBlue(50)
	if c != NewColor(200, 100, 50) {
		t.Errorf("after setters: got %v, want (200,100,50)", c)
	}
}

func TestColor_CopyIsIndependent(t *testing.T) {
	a := NewColor(1, 2, 3)
	b := a
	b.SetRed(99)
	if a.R != 1 {
		t.Errorf("original changed through copy: got R=%d, want 1", a.R)
	}
}

func TestClampedColor(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Color
	}{
		{"in range", 12, 34, 56, Color{12, 34, 56}},
		{"negative", -5, 0, -300, Color{0, 0, 0}},
		{"too large", 256, 1000, 255, Color{255, 255, 255}},
		{"mixed", -1, 128, 999, Color{0, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampedColor(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ClampedColor(%d,%d,%d): got %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestColor_Equal(t *testing.T) {
	a := NewColor(1, 2, 3)
	if !a.Equal(NewColor(1, 2, 3)) {
		t.Error("identical colors should be equal")
	}
	for _, other := range []Color{{0, 2, 3}, {1, 0, 3}, {1, 2, 0}} {
		if a.Equal(other) {
			t.Errorf("%v should not equal %v", a, other)
		}
	}
}

func TestColor_Grayscale(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  float64
	}{
		{"black", Color{0, 0, 0}, 0},
		{"white", Color{255, 255, 255}, 255},
		{"red", Color{255, 0, 0}, 76.245},
		{"green", Color{0, 255, 0}, 149.685},
		{"blue", Color{0, 0, 255}, 29.07},
		{"mixed", Color{100, 150, 200}, 0.299*100 + 0.587*150 + 0.114*200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.Grayscale()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Grayscale(%v): got %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestColor_Invert(t *testing.T) {
	c := NewColor(0, 100, 255)
	if got := c.Invert(); got != NewColor(255, 155, 0) {
		t.Errorf("Invert: got %v, want (255,155,0)", got)
	}
	if got := c.Invert().Invert(); got != c {
		t.Errorf("double Invert: got %v, want %v", got, c)
	}
}

func TestColor_String(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{0, 0, 0}, "(0,0,0)"},
		{Color{255, 0, 128}, "(255,0,128)"},
		{Color{1, 22, 255}, "(1,22,255)"},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("String: got %q, want %q", got, tt.want)
		}
	}
}

func TestColor_RGBA(t *testing.T) {
	var _ color.Color = Color{}

	r, g, b, a := NewColor(255, 128, 0).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA: got (%#x,%#x,%#x,%#x), want (0xffff,0x8080,0,0xffff)", r, g, b, a)
	}
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{0, 0, 0}, "#000000"},
		{Color{255, 255, 255}, "#ffffff"},
		{Color{255, 128, 64}, "#ff8040"},
		{Color{1, 2, 3}, "#010203"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex(%v): got %s, want %s", tt.color, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#000000", Color{0, 0, 0}},
		{"#FF8040", Color{255, 128, 64}},
		{"#ff8040", Color{255, 128, 64}},
		{"#FFFFFF", Color{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "red", "#zzzzzz", "#12", "#fff", "ff0000", "#ff0000zz", "#ff0000 x", "#ff00000"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHex(input)
			if err == nil {
				t.Fatalf("ParseHex(%q) should fail", input)
			}
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("error should wrap ErrInvalidHex, got %v", err)
			}
		})
	}
}

func TestParseHex_RoundTrip(t *testing.T) {
	for _, c := range []Color{{0, 0, 0}, {255, 255, 255}, {17, 34, 51}, {200, 1, 99}} {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%s) failed: %v", c.Hex(), err)
		}
		if got != c {
			t.Errorf("round trip: got %v, want %v", got, c)
		}
	}
}

func TestColor_Describe(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		wantHex string
		wantHSL HSLColor
	}{
		{"red", Color{255, 0, 0}, "#ff0000", HSLColor{0, 100, 50}},
		{"green", Color{0, 255, 0}, "#00ff00", HSLColor{120, 100, 50}},
		{"blue", Color{0, 0, 255}, "#0000ff", HSLColor{240, 100, 50}},
		{"white", Color{255, 255, 255}, "#ffffff", HSLColor{0, 0, 100}},
		{"black", Color{0, 0, 0}, "#000000", HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.Describe()
			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
			if got.RGB != tt.color {
				t.Errorf("RGB: got %v, want %v", got.RGB, tt.color)
			}
			if got.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", got.HSL, tt.wantHSL)
			}
			if math.Abs(got.Gray-tt.color.Grayscale()) > 0.001 {
				t.Errorf("Gray: got %v, want %v", got.Gray, tt.color.Grayscale())
			}
		})
	}
}
