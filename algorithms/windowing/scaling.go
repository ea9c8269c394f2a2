package windowing

import (
	"math"
)

// ScalingFactor returns the squared sum of a Hann-shaped reference
// curve of the given size. Magnitude output divides by this factor so
// that a full-scale sinusoid lands at a stable peak height. The
// reference curve is always Hann, whatever window family is selected,
// so switching windows never rescales the display baseline.
func ScalingFactor(size int) float32 {
	if size < 2 {
		return 1.0
	}

	m := float64(size - 1)
	sum := 0.0

	for i := 0; i < size; i++ {
		sum += 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/m))
	}

	return float32(sum * sum)
}
