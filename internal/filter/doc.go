// Package filter provides the per-row pixel kernels of the smoothing engine.
//
// Filters read from a source PixelBuffer and write a row range [y0, y1) of a
// distinct destination buffer of the same size. Because the source is never
// written during a pass, disjoint row ranges can be processed concurrently
// without synchronization.
//
// Available filters:
//   - Desaturate: unweighted (R+G+B)/3 gray, alpha untouched
//   - BoxBlur: square neighborhood mean with edge exclusion
package filter
