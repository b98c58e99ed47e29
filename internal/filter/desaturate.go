package filter

import "github.com/gogpu/smooth/internal/image"

// DesaturateFilter replaces R, G and B with their truncated mean (R+G+B)/3.
// Alpha is copied unchanged. Applying it twice gives the same result as once.
type DesaturateFilter struct{}

// NewDesaturateFilter creates a desaturation filter.
func NewDesaturateFilter() *DesaturateFilter {
	return &DesaturateFilter{}
}

// Name returns "desaturate".
func (*DesaturateFilter) Name() string { return "desaturate" }

// ApplyRows desaturates rows [y0, y1) of src into dst.
func (*DesaturateFilter) ApplyRows(src, dst *image.PixelBuffer, y0, y1 int) {
	y0, y1 = clampRows(src, y0, y1)
	if y0 >= y1 {
		return
	}

	stride := src.Stride()
	srcData := src.Data()[y0*stride : y1*stride]
	dstData := dst.Data()[y0*stride : y1*stride]

	for i := 0; i+3 < len(srcData); i += image.BytesPerPixel {
		gray := uint8((uint16(srcData[i]) + uint16(srcData[i+1]) + uint16(srcData[i+2])) / 3)
		dstData[i] = gray
		dstData[i+1] = gray
		dstData[i+2] = gray
		dstData[i+3] = srcData[i+3]
	}
}
