package filter

// BoxKernelSize returns the edge length 2*radius+1 of a square box kernel.
// For radius <= 0 it returns 1 (identity).
func BoxKernelSize(radius int) int {
	if radius <= 0 {
		return 1
	}
	return radius*2 + 1
}

// Window returns the inclusive range [lo, hi] of in-bounds indices covered
// by a kernel of the given radius centered on center, for an axis of length n.
func Window(center, radius, n int) (lo, hi int) {
	return clampInt(center-radius, 0, n-1), clampInt(center+radius, 0, n-1)
}

// WindowCount returns the number of in-bounds samples a box kernel of the
// given radius averages at (x, y) in a width×height image.
func WindowCount(x, y, radius, width, height int) int {
	left, right := Window(x, radius, width)
	top, bottom := Window(y, radius, height)
	return (right - left + 1) * (bottom - top + 1)
}
