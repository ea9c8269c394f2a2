package windowing

import (
	"math"
)

// fillHamming writes Hamming coefficients: 0.54 - 0.46*cos(2*pi*i/M)
func fillHamming(dst []float32) {
	m := float64(len(dst) - 1)

	for i := range dst {
		dst[i] = float32(0.54 - 0.46*math.Cos(2.0*math.Pi*float64(i)/m))
	}
}
