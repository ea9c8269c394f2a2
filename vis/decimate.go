package vis

import (
	"gonum.org/v1/gonum/floats"
)

// DecimateMinMax reduces a dense curve to at most maxPoints by keeping
// the minimum and maximum of each span, so peaks survive that plain
// subsampling would drop. Points are assumed ordered by X.
func DecimateMinMax(points []Point, maxPoints int) []Point {
	if maxPoints < 2 || len(points) <= maxPoints {
		return points
	}

	spans := maxPoints / 2
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}

	out := make([]Point, 0, spans*2)

	for s := 0; s < spans; s++ {
		lo := s * len(points) / spans
		hi := (s + 1) * len(points) / spans
		if hi <= lo {
			continue
		}

		minIdx := lo + floats.MinIdx(ys[lo:hi])
		maxIdx := lo + floats.MaxIdx(ys[lo:hi])

		if minIdx == maxIdx {
			out = append(out, points[minIdx])
			continue
		}

		// Preserve X order within the span
		first, second := minIdx, maxIdx
		if first > second {
			first, second = second, first
		}
		out = append(out, points[first], points[second])
	}

	return out
}
