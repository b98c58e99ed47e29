package filter

import "github.com/gogpu/smooth/internal/image"

// BoxBlurFilter replaces every pixel with the per-channel mean of the
// (2*Radius+1)² square centered on it.
//
// Neighbors outside the image are excluded from both the sum and the count,
// so corner pixels average fewer samples than interior ones. Alpha is
// averaged like any other channel. Results are truncated toward zero.
//
// This is a direct O(w*h*(2r+1)²) convolution.
type BoxBlurFilter struct {
	// Radius is the half-width of the neighborhood, excluding the center.
	Radius int
}

// NewBoxBlurFilter creates a box blur with the given radius.
func NewBoxBlurFilter(radius int) *BoxBlurFilter {
	return &BoxBlurFilter{Radius: radius}
}

// Name returns "box_blur".
func (*BoxBlurFilter) Name() string { return "box_blur" }

// KernelSize returns the edge length of the neighborhood, 2*Radius+1.
func (f *BoxBlurFilter) KernelSize() int {
	return BoxKernelSize(f.Radius)
}

// ApplyRows blurs rows [y0, y1) of src into dst.
func (f *BoxBlurFilter) ApplyRows(src, dst *image.PixelBuffer, y0, y1 int) {
	y0, y1 = clampRows(src, y0, y1)
	if y0 >= y1 {
		return
	}

	radius := max(f.Radius, 0)
	width, height := src.Bounds()
	stride := src.Stride()
	srcData := src.Data()
	dstData := dst.Data()

	for y := y0; y < y1; y++ {
		top, bottom := Window(y, radius, height)
		rows := uint32(bottom - top + 1)

		for x := range width {
			left, right := Window(x, radius, width)
			count := rows * uint32(right-left+1)

			var r, g, b, a uint32
			for ny := top; ny <= bottom; ny++ {
				row := srcData[ny*stride : (ny+1)*stride]
				for nx := left; nx <= right; nx++ {
					i := nx * image.BytesPerPixel
					r += uint32(row[i])
					g += uint32(row[i+1])
					b += uint32(row[i+2])
					a += uint32(row[i+3])
				}
			}

			o := y*stride + x*image.BytesPerPixel
			dstData[o] = uint8(r / count)
			dstData[o+1] = uint8(g / count)
			dstData[o+2] = uint8(b / count)
			dstData[o+3] = uint8(a / count)
		}
	}
}
