package smooth

// SamplePixel returns the sample at (x, y).
//
// Coordinates outside buf return an error wrapping ErrOutOfBounds. This is
// expected when a cursor position is mapped onto the last row or column of
// an image; callers should treat it as "no data".
func SamplePixel(buf *PixelBuffer, x, y int) (PixelSample, error) {
	if buf == nil {
		return PixelSample{}, ErrOutOfBounds
	}
	return buf.At(x, y)
}

// PixelInfo returns the hover text for (x, y),
// e.g. "Pixel (R,G,B,A): (12, 34, 56, 255)".
// ok is false when the coordinate is outside buf.
func PixelInfo(buf *PixelBuffer, x, y int) (info string, ok bool) {
	s, err := SamplePixel(buf, x, y)
	if err != nil {
		return "", false
	}
	return s.Info(), true
}
