package filter

import (
	"testing"

	"github.com/gogpu/smooth/internal/image"
)

// Test helper functions shared across filter tests.

// createTestBuffer creates a buffer filled with the given sample.
func createTestBuffer(t testing.TB, w, h int, s image.PixelSample) *image.PixelBuffer {
	t.Helper()
	b, err := image.NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	b.Fill(s)
	return b
}

// createPatternBuffer creates a buffer whose samples follow a deterministic
// pseudo-random pattern, so every neighborhood differs.
func createPatternBuffer(t testing.TB, w, h int) *image.PixelBuffer {
	t.Helper()
	b, err := image.NewPixelBuffer(w, h)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d) error = %v", w, h, err)
	}
	state := uint32(2463534242)
	data := b.Data()
	for i := range data {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		data[i] = byte(state)
	}
	return b
}

// applyAll runs f over every row of src into a fresh buffer.
func applyAll(t testing.TB, f Filter, src *image.PixelBuffer) *image.PixelBuffer {
	t.Helper()
	dst, err := image.NewPixelBuffer(src.Width(), src.Height())
	if err != nil {
		t.Fatalf("NewPixelBuffer() error = %v", err)
	}
	f.ApplyRows(src, dst, 0, src.Height())
	return dst
}

// mustAt returns the sample at (x, y) or fails the test.
func mustAt(t testing.TB, b *image.PixelBuffer, x, y int) image.PixelSample {
	t.Helper()
	s, err := b.At(x, y)
	if err != nil {
		t.Fatalf("At(%d, %d) error = %v", x, y, err)
	}
	return s
}
