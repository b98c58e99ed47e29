// Package image provides the RGBA8 pixel buffer used by the smoothing engine.
//
// A PixelBuffer is a tightly packed, row-major array of 4-channel samples
// (R, G, B, A) with no row padding. Each buffer exclusively owns its backing
// storage: constructors copy caller data, and every transformation stage
// allocates a fresh buffer instead of resizing or rewriting one in place.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// BytesPerPixel is the number of samples per pixel (R, G, B, A).
const BytesPerPixel = 4

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or the sample count does not match width*height*4.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// PixelBuffer is a width×height raster of non-premultiplied RGBA8 samples.
//
// Thread safety: PixelBuffer is safe for concurrent read access. The engine
// only writes to buffers it has just allocated and not yet returned.
type PixelBuffer struct {
	data   []byte
	width  int
	height int
}

// sampleCount returns width*height*4, or ErrInvalidDimensions if either
// side is non-positive or the product does not fit in an int.
func sampleCount(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrInvalidDimensions
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return 0, fmt.Errorf("%w: %dx%d overflows sample count", ErrInvalidDimensions, width, height)
	}
	return width * height * BytesPerPixel, nil
}

// NewPixelBuffer creates a zeroed (transparent black) buffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	n, err := sampleCount(width, height)
	if err != nil {
		return nil, err
	}
	return &PixelBuffer{
		data:   make([]byte, n),
		width:  width,
		height: height,
	}, nil
}

// FromRaw creates a PixelBuffer from packed RGBA samples.
// The samples are copied, so the caller may reuse the slice afterwards.
// len(samples) must be exactly width*height*4.
func FromRaw(width, height int, samples []byte) (*PixelBuffer, error) {
	want, err := sampleCount(width, height)
	if err != nil {
		return nil, err
	}
	if len(samples) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d samples, got %d",
			ErrInvalidDimensions, width, height, want, len(samples))
	}

	data := make([]byte, len(samples))
	copy(data, samples)

	return &PixelBuffer{
		data:   data,
		width:  width,
		height: height,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &PixelBuffer{
		data:   newData,
		width:  b.width,
		height: b.height,
	}
}

// Width returns the image width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Bounds returns the image dimensions as (width, height).
func (b *PixelBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Stride returns the number of bytes per row.
func (b *PixelBuffer) Stride() int {
	return b.width * BytesPerPixel
}

// Data returns the raw sample slice.
// Buffers handed out by the engine must be treated as read-only.
func (b *PixelBuffer) Data() []byte {
	return b.data
}

// RowBytes returns the samples of row y.
// Returns nil if y is out of bounds.
func (b *PixelBuffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.Stride()
	return b.data[start : start+b.Stride()]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *PixelBuffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * BytesPerPixel
}

// At returns the sample at (x, y).
// Coordinates outside the buffer yield an error wrapping ErrOutOfBounds;
// no clamping or wraparound is applied.
func (b *PixelBuffer) At(x, y int) (PixelSample, error) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return PixelSample{}, fmt.Errorf("%w: (%d, %d) outside %dx%d",
			ErrOutOfBounds, x, y, b.width, b.height)
	}
	p := b.data[off : off+BytesPerPixel : off+BytesPerPixel]
	return PixelSample{R: p[0], G: p[1], B: p[2], A: p[3]}, nil
}

// Set writes the sample at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *PixelBuffer) Set(x, y int, s PixelSample) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	b.data[off] = s.R
	b.data[off+1] = s.G
	b.data[off+2] = s.B
	b.data[off+3] = s.A
	return nil
}

// Fill sets every pixel to s.
func (b *PixelBuffer) Fill(s PixelSample) {
	for off := 0; off < len(b.data); off += BytesPerPixel {
		b.data[off] = s.R
		b.data[off+1] = s.G
		b.data[off+2] = s.B
		b.data[off+3] = s.A
	}
}

// SameSize reports whether other has the same width and height.
func (b *PixelBuffer) SameSize(other *PixelBuffer) bool {
	return other != nil && b.width == other.width && b.height == other.height
}

// Equal reports whether other has the same dimensions and samples.
func (b *PixelBuffer) Equal(other *PixelBuffer) bool {
	return b.SameSize(other) && bytes.Equal(b.data, other.data)
}

// ByteSize returns the total size of the sample data in bytes.
func (b *PixelBuffer) ByteSize() int {
	return len(b.data)
}
