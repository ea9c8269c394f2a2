package windowing

import (
	"math"
)

// fillHann writes Hann coefficients: 0.5*(1 - cos(2*pi*i/M)), M = N-1
func fillHann(dst []float32) {
	m := float64(len(dst) - 1)

	for i := range dst {
		dst[i] = float32(0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/m)))
	}
}
