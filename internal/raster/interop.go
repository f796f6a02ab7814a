package raster

import (
	"image"
	"image/color"
)

// FromImage copies an image.Image into a new Image. Row i, column j of the
// result is the source pixel at (Min.X+j, Min.Y+i). Alpha is discarded and
// 16-bit components are reduced to 8 bits by dropping the low byte.
//
// # Errors
//
// Returns a *ConstructionError wrapping ErrInvalidDimensions for empty bounds.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	img, err := New(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}
	for i := 0; i < img.height; i++ {
		for j := 0; j < img.width; j++ {
			r, g, b, _ := src.At(bounds.Min.X+j, bounds.Min.Y+i).RGBA()
			img.pix[img.index(i, j)] = Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
	}
	return img, nil
}

// NRGBA returns an opaque *image.NRGBA copy of the image with bounds
// (0,0)-(Width,Height).
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			c := m.pix[m.index(i, j)]
			out.SetNRGBA(j, i, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return out
}

// ParseHexGrid builds an image from rows of hex color strings.
//
// # Errors
//
// Returns a *ConstructionError wrapping ErrInvalidDimensions, ErrJaggedGrid or
// ErrInvalidHex.
func ParseHexGrid(rows [][]string) (*Image, error) {
	grid := make([][]Color, len(rows))
	for i, line := range rows {
		grid[i] = make([]Color, len(line))
		for j, s := range line {
			c, err := ParseHex(s)
			if err != nil {
				return nil, &ConstructionError{Rows: len(rows), Row: i, Col: j, Err: err}
			}
			grid[i][j] = c
		}
	}
	return FromGrid(grid)
}

// HexGrid returns the pixel grid with every color formatted by Color.Hex.
func (m *Image) HexGrid() [][]string {
	out := make([][]string, m.height)
	for i := range out {
		out[i] = make([]string, m.width)
		for j := range out[i] {
			out[i][j] = m.pix[m.index(i, j)].Hex()
		}
	}
	return out
}
