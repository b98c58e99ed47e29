package smooth

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a FilterConfig has a kernel radius
// outside {MinRadius, MaxRadius}.
var ErrInvalidConfig = errors.New("smooth: invalid filter config")

// Supported kernel radii.
const (
	// MinRadius selects a 3×3 neighborhood.
	MinRadius = 1

	// MaxRadius selects a 5×5 neighborhood.
	MaxRadius = 2
)

// FilterConfig selects the smoothing pipeline.
type FilterConfig struct {
	// Grayscale desaturates the image before blurring.
	Grayscale bool

	// Radius is the kernel half-width: 1 for 3×3, 2 for 5×5.
	Radius int
}

// ConfigForKernelSize builds a FilterConfig from a kernel edge length.
// Only 3 and 5 are accepted.
func ConfigForKernelSize(size int, grayscale bool) (FilterConfig, error) {
	if size%2 == 0 {
		return FilterConfig{}, fmt.Errorf("%w: kernel size %d must be 3 or 5", ErrInvalidConfig, size)
	}
	cfg := FilterConfig{Grayscale: grayscale, Radius: size / 2}
	if err := cfg.Validate(); err != nil {
		return FilterConfig{}, fmt.Errorf("%w: kernel size %d must be 3 or 5", ErrInvalidConfig, size)
	}
	return cfg, nil
}

// Validate reports ErrInvalidConfig if the radius is unsupported.
func (c FilterConfig) Validate() error {
	return validateRadius(c.Radius)
}

// KernelSize returns the neighborhood edge length, 2*Radius+1.
func (c FilterConfig) KernelSize() int {
	return 2*c.Radius + 1
}

// String implements fmt.Stringer.
func (c FilterConfig) String() string {
	n := c.KernelSize()
	if c.Grayscale {
		return fmt.Sprintf("%dx%d grayscale", n, n)
	}
	return fmt.Sprintf("%dx%d", n, n)
}

func validateRadius(radius int) error {
	if radius < MinRadius || radius > MaxRadius {
		return fmt.Errorf("%w: radius %d not in {%d, %d}", ErrInvalidConfig, radius, MinRadius, MaxRadius)
	}
	return nil
}
