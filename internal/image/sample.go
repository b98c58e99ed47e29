package image

import "strconv"

// PixelSample is a single RGBA8 value returned by point queries.
type PixelSample struct {
	R, G, B, A uint8
}

// String formats the sample as "(r, g, b, a)".
func (s PixelSample) String() string {
	buf := make([]byte, 0, 20)
	buf = append(buf, '(')
	for i, v := range [4]uint8{s.R, s.G, s.B, s.A} {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	return string(append(buf, ')'))
}

// Info formats the sample as hover text: "Pixel (R,G,B,A): (r, g, b, a)".
func (s PixelSample) Info() string {
	return "Pixel (R,G,B,A): " + s.String()
}
