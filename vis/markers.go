package vis

import (
	"fmt"
)

// markerCandidates are the label positions offered along the frequency
// axis, in Hz
var markerCandidates = []float64{10, 50, 100, 250, 1000, 5000, 10000, 20000, 25000}

// MarkerFrequencies returns the frequencies to label along the axis:
// both range bounds plus every candidate strictly inside the range
func MarkerFrequencies(freqLo, freqHi float64) []float64 {
	marks := []float64{freqLo}

	for _, f := range markerCandidates {
		if f <= freqLo {
			continue
		}
		if f >= freqHi {
			break
		}
		marks = append(marks, f)
	}

	return append(marks, freqHi)
}

// FormatFrequency renders a frequency label, switching to kHz at
// 1000 Hz and above
func FormatFrequency(freq float64) string {
	if freq >= 1000.0 {
		return fmt.Sprintf("%d kHz", int(freq/1000.0))
	}
	return fmt.Sprintf("%d Hz", int(freq))
}
