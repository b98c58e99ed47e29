package filter

import (
	"testing"

	"github.com/gogpu/smooth/internal/image"
)

func TestDesaturatePixel(t *testing.T) {
	tests := []struct {
		name string
		in   image.PixelSample
		want image.PixelSample
	}{
		{"black", image.PixelSample{R: 0, G: 0, B: 0, A: 255}, image.PixelSample{R: 0, G: 0, B: 0, A: 255}},
		{"white", image.PixelSample{R: 255, G: 255, B: 255, A: 255}, image.PixelSample{R: 255, G: 255, B: 255, A: 255}},
		{"pure red", image.PixelSample{R: 255, G: 0, B: 0, A: 255}, image.PixelSample{R: 85, G: 85, B: 85, A: 255}},
		{"truncates", image.PixelSample{R: 10, G: 20, B: 31, A: 200}, image.PixelSample{R: 20, G: 20, B: 20, A: 200}},
		{"max sum", image.PixelSample{R: 255, G: 255, B: 254, A: 0}, image.PixelSample{R: 254, G: 254, B: 254, A: 0}},
		{"alpha untouched", image.PixelSample{R: 3, G: 3, B: 3, A: 17}, image.PixelSample{R: 3, G: 3, B: 3, A: 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createTestBuffer(t, 1, 1, tt.in)
			got := mustAt(t, applyAll(t, NewDesaturateFilter(), src), 0, 0)
			if got != tt.want {
				t.Errorf("desaturate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDesaturateIdempotent(t *testing.T) {
	f := NewDesaturateFilter()
	src := createPatternBuffer(t, 17, 11)

	once := applyAll(t, f, src)
	twice := applyAll(t, f, once)

	if !once.Equal(twice) {
		t.Error("desaturate(desaturate(b)) != desaturate(b)")
	}
}

func TestDesaturateDoesNotMutateInput(t *testing.T) {
	src := createPatternBuffer(t, 8, 8)
	orig := src.Clone()

	_ = applyAll(t, NewDesaturateFilter(), src)

	if !src.Equal(orig) {
		t.Error("desaturate modified its input")
	}
}

func TestDesaturateRowRange(t *testing.T) {
	src := createTestBuffer(t, 2, 4, image.PixelSample{R: 90, A: 255})
	dst := createTestBuffer(t, 2, 4, image.PixelSample{R: 1, G: 1, B: 1, A: 1})

	NewDesaturateFilter().ApplyRows(src, dst, 1, 3)

	for y := range 4 {
		want := image.PixelSample{R: 1, G: 1, B: 1, A: 1}
		if y >= 1 && y < 3 {
			want = image.PixelSample{R: 30, G: 30, B: 30, A: 255}
		}
		for x := range 2 {
			if got := mustAt(t, dst, x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
