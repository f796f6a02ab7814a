package raster

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Luminance weights (ITU-R BT.601) used by Color.Grayscale.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// Color is an RGB color with 8-bit components.
//
// Color is a value type: assigning it, passing it to a function, or returning it
// from one always yields an independent copy. The zero value is black.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// NewColor returns a color with the given components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ClampedColor builds a color from int components, clamping each one into
// [0, 255]. Use it when components come from arithmetic or untrusted input.
func ClampedColor(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Black returns the default color (0,0,0).
func Black() Color {
	return Color{}
}

func (c Color) Red() uint8   { return c.R }
func (c Color) Green() uint8 { return c.G }
func (c Color) Blue() uint8  { return c.B }

func (c *Color) SetRed(v uint8)   { c.R = v }
func (c *Color) SetGreen(v uint8) { c.G = v }
func (c *Color) SetBlue(v uint8)  { c.B = v }

// Equal reports whether all three components match.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Grayscale returns the perceptual luminance of the color:
//
//	0.299*R + 0.587*G + 0.114*B
//
// The result is not rounded or clamped; it lies in [0, 255].
func (c Color) Grayscale() float64 {
	return lumaRed*float64(c.R) + lumaGreen*float64(c.G) + lumaBlue*float64(c.B)
}

// Invert returns the complementary color (255 minus each component).
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// String renders the color as "(R,G,B)", e.g. "(255,0,128)".
func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Colorful converts the color to a go-colorful color for color-space math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// ParseHex parses a "#rrggbb" string (either case). The leading '#' is required
// and nothing may follow the six digits.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w %q: want #rrggbb", ErrInvalidHex, s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
// It is the reporting shape used when a pixel is handed to an external consumer:
//   - Hex: compact string format "#rrggbb"
//   - RGB: 8-bit components
//   - HSL: perceptual description, informational only
//   - Gray: the luminance returned by Color.Grayscale
type ColorResult struct {
	Hex  string   `json:"hex"`
	RGB  Color    `json:"rgb"`
	HSL  HSLColor `json:"hsl"`
	Gray float64  `json:"gray"`
}

// Describe returns the color in every representation of ColorResult.
func (c Color) Describe() ColorResult {
	h, s, l := c.Colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return ColorResult{
		Hex: c.Hex(),
		RGB: c,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
		Gray: math.Round(c.Grayscale()*1000) / 1000,
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
