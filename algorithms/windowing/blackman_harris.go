package windowing

import (
	"math"
)

// fillBlackmanHarris writes 4-term Blackman-Harris coefficients
func fillBlackmanHarris(dst []float32) {
	m := float64(len(dst) - 1)

	a0, a1, a2, a3 := 0.35875, 0.48829, 0.14128, 0.01168

	for i := range dst {
		arg := 2.0 * math.Pi * float64(i) / m
		dst[i] = float32(a0 - a1*math.Cos(arg) + a2*math.Cos(2*arg) - a3*math.Cos(3*arg))
	}
}
