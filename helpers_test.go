package smooth

import "testing"

var (
	black = PixelSample{R: 0, G: 0, B: 0, A: 255}
	white = PixelSample{R: 255, G: 255, B: 255, A: 255}
)

// checkerboard creates a w×h buffer with black at even (x+y) and white at odd.
func checkerboard(t testing.TB, w, h int) *PixelBuffer {
	t.Helper()
	samples := make([]byte, 0, w*h*4)
	for y := range h {
		for x := range w {
			s := black
			if (x+y)%2 == 1 {
				s = white
			}
			samples = append(samples, s.R, s.G, s.B, s.A)
		}
	}
	buf, err := FromRaw(w, h, samples)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	return buf
}

// noise creates a w×h buffer of deterministic pseudo-random samples.
func noise(t testing.TB, w, h int) *PixelBuffer {
	t.Helper()
	samples := make([]byte, w*h*4)
	state := uint32(0x9e3779b9)
	for i := range samples {
		state = state*1664525 + 1013904223
		samples[i] = byte(state >> 24)
	}
	buf, err := FromRaw(w, h, samples)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	return buf
}
