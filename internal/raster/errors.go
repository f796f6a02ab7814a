package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when an image would have fewer than one
	// row or column.
	ErrInvalidDimensions = errors.New("image dimensions must be at least 1x1")

	// ErrJaggedGrid is returned when the rows of a source grid differ in length.
	ErrJaggedGrid = errors.New("grid rows must all have the same length")

	// ErrInvalidHex is returned when a color string is not a valid hex color.
	ErrInvalidHex = errors.New("invalid hex color")
)

// ConstructionError describes why an Image could not be built.
//
// Row is the offending row for ErrJaggedGrid and ErrInvalidHex, and -1 otherwise.
// Col is the offending column for ErrInvalidHex, and -1 otherwise.
type ConstructionError struct {
	Rows, Cols int
	Row, Col   int
	Err        error
}

func (e *ConstructionError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("failed to build image: pixel (%d,%d): %v", e.Row, e.Col, e.Err)
	case e.Row >= 0:
		return fmt.Sprintf("failed to build image: row %d: %v", e.Row, e.Err)
	default:
		return fmt.Sprintf("failed to build %dx%d image: %v", e.Rows, e.Cols, e.Err)
	}
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
