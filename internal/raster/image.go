package raster

import (
	"strings"
)

// Image is a fixed-size, row-major grid of colors.
//
// The image owns its pixel storage. Every accessor returns a copy and every
// mutator stores a copy, so no caller can alias a cell of the grid.
//
// Pixels live in a single contiguous slice: the pixel at (row, col) is
// pix[row*width+col].
//
// An Image is not safe for concurrent mutation. Concurrent reads are fine as
// long as no goroutine is mutating the same Image; see the store package for
// a registry that enforces this.
type Image struct {
	height int
	width  int
	pix    []Color
}

// New creates an all-black image with the given number of rows and columns.
//
// # Errors
//
// Returns a *ConstructionError wrapping ErrInvalidDimensions if rows or cols
// is less than 1.
func New(rows, cols int) (*Image, error) {
	if rows < 1 || cols < 1 {
		return nil, &ConstructionError{Rows: rows, Cols: cols, Row: -1, Col: -1, Err: ErrInvalidDimensions}
	}
	return newImage(rows, cols), nil
}

// FromGrid builds an image from a deep copy of grid. The height is len(grid)
// and the width is len(grid[0]).
//
// # Errors
//
//   - ErrInvalidDimensions if grid has no rows or its first row is empty
//   - ErrJaggedGrid if any row differs in length from the first
//
// Both are wrapped in a *ConstructionError.
func FromGrid(grid [][]Color) (*Image, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		cols := 0
		if len(grid) > 0 {
			cols = len(grid[0])
		}
		return nil, &ConstructionError{Rows: len(grid), Cols: cols, Row: -1, Col: -1, Err: ErrInvalidDimensions}
	}

	rows, cols := len(grid), len(grid[0])
	img := newImage(rows, cols)
	for i, line := range grid {
		if len(line) != cols {
			return nil, &ConstructionError{Rows: rows, Cols: cols, Row: i, Col: -1, Err: ErrJaggedGrid}
		}
		copy(img.pix[i*cols:(i+1)*cols], line)
	}
	return img, nil
}

func newImage(rows, cols int) *Image {
	return &Image{
		height: rows,
		width:  cols,
		pix:    make([]Color, rows*cols),
	}
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	pix := make([]Color, len(m.pix))
	copy(pix, m.pix)
	return &Image{height: m.height, width: m.width, pix: pix}
}

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// InBounds reports whether (row, col) addresses a pixel of the image.
func (m *Image) InBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Pixel returns the color at (row, col).
//
// Out-of-bounds coordinates are not an error: Pixel returns black instead.
// Use Lookup to tell the two cases apart.
func (m *Image) Pixel(row, col int) Color {
	c, _ := m.Lookup(row, col)
	return c
}

// Lookup returns the color at (row, col) and whether the coordinates were in
// bounds. When ok is false the returned color is black.
func (m *Image) Lookup(row, col int) (c Color, ok bool) {
	if !m.InBounds(row, col) {
		return Black(), false
	}
	return m.pix[m.index(row, col)], true
}

// SetPixel stores c at (row, col). Out-of-bounds coordinates are ignored.
func (m *Image) SetPixel(row, col int, c Color) {
	m.TrySetPixel(row, col, c)
}

// TrySetPixel stores c at (row, col) and reports whether the coordinates were
// in bounds. The image is unchanged when it returns false.
func (m *Image) TrySetPixel(row, col int, c Color) bool {
	if !m.InBounds(row, col) {
		return false
	}
	m.pix[m.index(row, col)] = c
	return true
}

// Equal reports whether other has the same dimensions and identical pixels.
// A nil image is only equal to another nil image.
func (m *Image) Equal(other *Image) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.height != other.height || m.width != other.width {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// GrayscaleArray returns the luminance of every pixel in a new grid of the
// same shape. The image is not modified.
func (m *Image) GrayscaleArray() [][]float64 {
	out := make([][]float64, m.height)
	for i := range out {
		out[i] = make([]float64, m.width)
		for j := range out[i] {
			out[i][j] = m.pix[m.index(i, j)].Grayscale()
		}
	}
	return out
}

// ColorGrid returns a deep copy of the pixel grid.
func (m *Image) ColorGrid() [][]Color {
	out := make([][]Color, m.height)
	for i := range out {
		out[i] = make([]Color, m.width)
		copy(out[i], m.pix[i*m.width:(i+1)*m.width])
	}
	return out
}

// String renders one line per row, each pixel formatted by Color.String and
// separated by single spaces. Every row, including the last, ends with '\n'.
//
// The format is meant for debugging and logs; it is not a file format.
func (m *Image) String() string {
	var sb strings.Builder
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.pix[m.index(i, j)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Image) index(row, col int) int {
	return row*m.width + col
}
