package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// MagnitudeSpectrum computes a one-shot magnitude spectrum of a signal,
// returning the positive-frequency bins (len(signal)/2 + 1 values).
// It allocates per call and handles arbitrary signal lengths, so it is
// meant for offline inspection and preview rendering rather than the
// streaming path; the streaming path uses FFT.
func MagnitudeSpectrum(signal []float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	spectrum := fft.FFTReal(signal)

	nBins := len(spectrum)/2 + 1
	nBins = min(len(spectrum), nBins)

	magnitude := make([]float64, nBins)
	for i := range magnitude {
		magnitude[i] = cmplx.Abs(spectrum[i])
	}

	return magnitude
}
