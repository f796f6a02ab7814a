// Package raster implements an in-memory RGB image: a fixed-size grid of
// 8-bit colors with geometric and colorimetric transforms.
//
// # Coordinate System
//
// Pixels are addressed as (row, col), both 0-based:
//   - row: vertical position (0 = top row)
//   - col: horizontal position (0 = leftmost column)
//
// When converting to or from image.Image, col maps to X and row maps to Y.
//
// # Value Semantics
//
// Color is a plain value type. Image owns its storage: Pixel returns a copy,
// SetPixel stores a copy, ColorGrid and Clone return deep copies. Nothing a
// caller holds can alias the inside of an Image.
//
// # Lenient Bounds
//
// Out-of-bounds reads return black and out-of-bounds writes are ignored.
// Lookup and TrySetPixel expose the same operations with an explicit
// in-bounds result for callers that need to know.
//
// # Transforms
//
// Flips and color inversion work in place. Rotations and shifts build a new
// buffer and install it in one step; rotations swap height and width. Shifts
// fill uncovered rows or columns with black and discard whatever moves past
// an edge.
//
// # Thread Safety
//
// An Image has no internal locking. Any number of goroutines may read the
// same Image, but a mutation must not overlap with any other access.
//
// # Errors
//
// Transforms and accessors never fail. Only construction can: New, FromGrid,
// FromImage and ParseHexGrid return a *ConstructionError for non-positive
// dimensions, jagged grids or malformed hex colors.
package raster
