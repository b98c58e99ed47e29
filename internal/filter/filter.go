package filter

import "github.com/gogpu/smooth/internal/image"

// Filter is a pixel transformation that can be applied one row range at a time.
type Filter interface {
	// ApplyRows writes rows [y0, y1) of dst from src.
	// src and dst must have identical dimensions and must not alias.
	ApplyRows(src, dst *image.PixelBuffer, y0, y1 int)

	// Name returns a short identifier used in log records.
	Name() string
}

// clampRows clamps [y0, y1) to the rows of b.
func clampRows(b *image.PixelBuffer, y0, y1 int) (int, int) {
	return clampInt(y0, 0, b.Height()), clampInt(y1, 0, b.Height())
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
