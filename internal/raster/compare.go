package raster

import "math"

// diffThreshold is the mean per-channel difference above which two pixels
// are counted as different by Compare.
const diffThreshold = 10

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareResult contains pixel-level comparison statistics for two images.
type CompareResult struct {
	Equal            bool    `json:"equal"`
	SameSize         bool    `json:"same_size"`
	Size1            Size    `json:"size1"`
	Size2            Size    `json:"size2"`
	PixelsDifferent  int     `json:"pixels_different"`
	PixelsUnequal    int     `json:"pixels_unequal"`
	TotalPixels      int     `json:"total_pixels"`
	SimilarityScore  float64 `json:"similarity_score"`
	AverageColorDiff float64 `json:"average_color_diff"`
}

// Compare measures how much two images differ.
//
// Only the overlapping area (the top-left min(height) x min(width) block) is
// compared. PixelsUnequal counts pixels that are not exactly equal, while
// PixelsDifferent only counts pixels whose mean channel difference exceeds a
// small tolerance. Equal is the same answer as a.Equal(b).
//
// A nil image has size 0x0, so comparing against nil yields no pixel
// statistics.
func Compare(a, b *Image) *CompareResult {
	if a == nil || b == nil {
		return &CompareResult{
			Equal:    a.Equal(b),
			SameSize: sizeOf(a) == sizeOf(b),
			Size1:    sizeOf(a),
			Size2:    sizeOf(b),
		}
	}

	minW := a.width
	if b.width < minW {
		minW = b.width
	}
	minH := a.height
	if b.height < minH {
		minH = b.height
	}

	total := minW * minH
	different, unequal := 0, 0
	var totalDiff float64

	for i := 0; i < minH; i++ {
		for j := 0; j < minW; j++ {
			p := a.pix[a.index(i, j)]
			q := b.pix[b.index(i, j)]
			if p != q {
				unequal++
			}
			diff := float64(absDiff(p.R, q.R)+absDiff(p.G, q.G)+absDiff(p.B, q.B)) / 3.0
			totalDiff += diff
			if diff > diffThreshold {
				different++
			}
		}
	}

	return &CompareResult{
		Equal:            a.Equal(b),
		SameSize:         a.width == b.width && a.height == b.height,
		Size1:            Size{Width: a.width, Height: a.height},
		Size2:            Size{Width: b.width, Height: b.height},
		PixelsDifferent:  different,
		PixelsUnequal:    unequal,
		TotalPixels:      total,
		SimilarityScore:  math.Round((1.0-float64(different)/float64(total))*1000) / 1000,
		AverageColorDiff: math.Round(totalDiff/float64(total)*100) / 100,
	}
}

func sizeOf(m *Image) Size {
	if m == nil {
		return Size{}
	}
	return Size{Width: m.width, Height: m.height}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
