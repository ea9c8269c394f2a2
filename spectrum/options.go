package spectrum

import (
	"strconv"
)

// FFTSizeChoice pairs a transform size with a display label, for
// populating option lists in a UI layer
type FFTSizeChoice struct {
	Value int
	Label string
}

var fftSizes = []int{128, 256, 512, 1024, 2048, 4096}

// FFTSizeChoices returns the selectable transform sizes up to and
// including maxFFTSize
func FFTSizeChoices(maxFFTSize int) []FFTSizeChoice {
	choices := make([]FFTSizeChoice, 0, len(fftSizes))

	for _, n := range fftSizes {
		if n > maxFFTSize {
			break
		}
		choices = append(choices, FFTSizeChoice{Value: n, Label: strconv.Itoa(n)})
	}

	return choices
}
