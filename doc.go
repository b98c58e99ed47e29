// Package smooth provides an RGBA box-blur smoothing engine.
//
// # Overview
//
// smooth takes a decoded raster image, optionally desaturates it, and then
// replaces every pixel with the mean of its 3×3 or 5×5 neighborhood. The
// result is a new image of the same size; inputs are never modified.
//
// # Quick Start
//
//	import "github.com/gogpu/smooth"
//
//	buf, err := smooth.LoadImage("photo.png")
//	if err != nil {
//	    return err
//	}
//
//	cfg, err := smooth.ConfigForKernelSize(5, true) // 5×5, grayscale first
//	if err != nil {
//	    return err
//	}
//
//	out, err := smooth.Process(buf, cfg)
//	if err != nil {
//	    return err
//	}
//	_ = out.SaveImage("smoothed.png")
//
// # Edge Handling
//
// Neighbors that fall outside the image are excluded: they contribute to
// neither the sum nor the divisor. A corner pixel under a 3×3 kernel is the
// mean of 4 samples, an edge pixel of 6, an interior pixel of 9. All four
// channels, alpha included, are averaged independently and truncated.
//
// # Concurrency
//
// The package-level functions run on the calling goroutine. An [Engine]
// created with [WithWorkers] splits the output into row bands and processes
// them on a worker pool; the result is byte-identical to the sequential one.
// ProcessContext checks for cancellation between bands.
//
// # Pixel Inspection
//
// [SamplePixel] returns the RGBA value at a coordinate or an error wrapping
// [ErrOutOfBounds]. Interactive callers hovering near the right or bottom
// edge should treat that error as "no data"; [PixelInfo] does so and returns
// ready-to-display text.
package smooth

// Version is the current version of the library.
const Version = "0.1.0"
