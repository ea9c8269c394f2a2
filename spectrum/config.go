package spectrum

import (
	"fmt"

	"github.com/RyanBlaney/sonido-scope/algorithms/windowing"
)

// OutputType selects the encoding written to the output buffer when an
// analysis frame completes
type OutputType string

const (
	// OutputComplex packs the lower N/2 bins as N/2 real parts followed
	// by N/2 imaginary parts
	OutputComplex OutputType = "complex"
	// OutputMagnitude writes N normalized magnitude values
	OutputMagnitude OutputType = "magnitude"
)

// Valid reports whether t names a known output encoding
func (t OutputType) Valid() bool {
	switch t {
	case OutputComplex, OutputMagnitude:
		return true
	}
	return false
}

// MinFFTSize is the smallest supported transform size. The symmetric
// window tables need at least two sample positions.
const MinFFTSize = 2

// Config holds the analyzer configuration. Changing any field through
// Configure re-derives the window table and resets all frame state.
type Config struct {
	// FFTSize is the transform size N: a power of two between
	// MinFFTSize and the analyzer's construction-time maximum. The
	// input block size equals FFTSize.
	FFTSize int

	// Overlap is the number of overlapped analysis frames (>= 1)
	Overlap int

	// Window selects the window family applied before the transform
	Window windowing.Type

	// Output selects the encoding of completed frames
	Output OutputType
}

// DefaultConfig returns the conventional analyzer setup: 1024-point
// transform, 2 overlapped frames, Hann window, magnitude output.
func DefaultConfig() Config {
	return Config{
		FFTSize: 1024,
		Overlap: 2,
		Window:  windowing.Hann,
		Output:  OutputMagnitude,
	}
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Validate checks the configuration against the analyzer's maximum
// transform size
func (c Config) Validate(maxFFTSize int) error {
	if !isPowerOfTwo(c.FFTSize) {
		return fmt.Errorf("fft size must be a power of two, got %d", c.FFTSize)
	}
	if c.FFTSize < MinFFTSize {
		return fmt.Errorf("fft size must be at least %d, got %d", MinFFTSize, c.FFTSize)
	}
	if c.FFTSize > maxFFTSize {
		return fmt.Errorf("fft size %d exceeds maximum %d", c.FFTSize, maxFFTSize)
	}
	if c.Overlap < 1 {
		return fmt.Errorf("overlap must be at least 1, got %d", c.Overlap)
	}
	if !c.Window.Valid() {
		return fmt.Errorf("unknown window type: %s", c.Window)
	}
	if !c.Output.Valid() {
		return fmt.Errorf("unknown output type: %s", c.Output)
	}
	return nil
}
