package windowing

import (
	"math"
)

// fillFlattop writes 5-term flat-top coefficients. The sidelobe
// regions go negative, bottoming out near -0.07, which is inherent to
// this family.
func fillFlattop(dst []float32) {
	m := float64(len(dst) - 1)

	a0, a1, a2 := 0.21557895, 0.41663158, 0.277263158
	a3, a4 := 0.083578947, 0.006947368

	for i := range dst {
		arg := 2.0 * math.Pi * float64(i) / m
		dst[i] = float32(a0 - a1*math.Cos(arg) + a2*math.Cos(2*arg) - a3*math.Cos(3*arg) + a4*math.Cos(4*arg))
	}
}
