package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is used by SaveImage for .jpg and .jpeg paths.
const DefaultJPEGQuality = 90

// LoadImage loads an image from the given file path.
// The format is detected from content: PNG, JPEG, GIF, BMP, TIFF and WebP
// are supported.
func LoadImage(path string) (*PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadImageFromBytes decodes an image held in memory.
func LoadImageFromBytes(data []byte) (*PixelBuffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*PixelBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage converts a standard library image.Image into a PixelBuffer
// of non-premultiplied RGBA samples.
func FromStdImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	buf, err := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path: NRGBA already matches the sample layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+buf.Stride()])
		}
		return buf, nil
	}

	// Everything else goes through draw, which un-premultiplies as needed.
	dst := &image.NRGBA{
		Pix:    buf.data,
		Stride: buf.Stride(),
		Rect:   image.Rect(0, 0, buf.width, buf.height),
	}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return buf, nil
}

// ToStdImage returns a copy of the buffer as *image.NRGBA.
func (b *PixelBuffer) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(nrgba.Pix, b.data)
	return nrgba
}

// Encode writes the buffer to w in the named format
// ("png", "jpeg", "jpg", "bmp", "tiff", "tif").
func (b *PixelBuffer) Encode(w io.Writer, format string) error {
	img := b.ToStdImage()

	var err error
	switch strings.ToLower(format) {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// SupportedFormat reports whether Encode accepts the named format.
func SupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "png", "jpg", "jpeg", "bmp", "tif", "tiff":
		return true
	}
	return false
}

// SaveImage writes the buffer to path, choosing the encoder from the
// file extension.
func (b *PixelBuffer) SaveImage(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !SupportedFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodeToBytes encodes the buffer as PNG and returns the bytes.
func (b *PixelBuffer) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Encode(&buf, "png"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
