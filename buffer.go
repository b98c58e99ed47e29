package smooth

import (
	"image"
	"io"

	intImage "github.com/gogpu/smooth/internal/image"
)

// PixelBuffer is a public alias for the internal RGBA8 pixel buffer.
// Samples are row-major, channel order R, G, B, A, with no row padding.
type PixelBuffer = intImage.PixelBuffer

// PixelSample is a single RGBA8 value returned by point queries.
type PixelSample = intImage.PixelSample

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when a buffer is constructed with a
	// non-positive size or a sample count other than width*height*4.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrOutOfBounds is returned by point queries outside the buffer.
	ErrOutOfBounds = intImage.ErrOutOfBounds

	// ErrUnsupportedFormat is returned when an image cannot be decoded or
	// encoded in the requested format.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrEmptyData is returned by DecodeBytes for zero-length input.
	ErrEmptyData = intImage.ErrEmptyData
)

// FromRaw creates a PixelBuffer from packed RGBA samples.
// The samples are copied; len(samples) must equal width*height*4.
func FromRaw(width, height int, samples []byte) (*PixelBuffer, error) {
	return intImage.FromRaw(width, height, samples)
}

// NewPixelBuffer creates a zeroed PixelBuffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	return intImage.NewPixelBuffer(width, height)
}

// FromImage converts a standard library image into a PixelBuffer.
func FromImage(img image.Image) (*PixelBuffer, error) {
	return intImage.FromStdImage(img)
}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image from r.
func Decode(r io.Reader) (*PixelBuffer, error) {
	return intImage.Decode(r)
}

// DecodeBytes decodes an encoded image held in memory. The inverse is
// PixelBuffer.EncodeToBytes, which produces PNG.
func DecodeBytes(data []byte) (*PixelBuffer, error) {
	return intImage.LoadImageFromBytes(data)
}

// LoadImage reads and decodes the image file at path.
func LoadImage(path string) (*PixelBuffer, error) {
	return intImage.LoadImage(path)
}

// SupportedFormat reports whether PixelBuffer.Encode accepts the named
// output format ("png", "jpg", "jpeg", "bmp", "tif", "tiff").
func SupportedFormat(format string) bool {
	return intImage.SupportedFormat(format)
}
