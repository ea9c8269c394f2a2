package spectrum

import (
	"math"

	"github.com/RyanBlaney/sonido-scope/algorithms/spectral"
)

// emit transforms a completed frame for one channel and encodes the
// result into that channel's shared output slot
func (a *Analyzer) emit(frame *stftFrame, ch int) {
	bins := frame.bins[ch][:a.cfg.FFTSize]
	a.fft.Transform(bins)

	switch a.cfg.Output {
	case OutputComplex:
		encodeComplex(a.out[ch], bins, a.fft)
	default:
		encodeMagnitude(a.out[ch], bins, a.fft, a.scaling)
	}
}

// encodeComplex packs the lower half of the spectrum: real parts into
// out[0:n/2], imaginary parts into out[n/2:n]
func encodeComplex(out []float32, bins []complex64, fft *spectral.FFT) {
	half := fft.Size() / 2

	for i := 0; i < half; i++ {
		bin := bins[fft.Permute(i)]
		out[i] = real(bin)
		out[i+half] = imag(bin)
	}
}

// encodeMagnitude writes sqrt(2*(re^2+im^2)/scaling) for every bin
func encodeMagnitude(out []float32, bins []complex64, fft *spectral.FFT, scaling float32) {
	n := fft.Size()

	for i := 0; i < n; i++ {
		bin := bins[fft.Permute(i)]
		re, im := real(bin), imag(bin)
		out[i] = float32(math.Sqrt(float64(2.0 * (re*re + im*im) / scaling)))
	}
}
