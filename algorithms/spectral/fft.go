package spectral

import (
	"fmt"
	"math"
	"math/bits"
)

// FFT is a fixed-size, in-place forward transform over single-precision
// complex bins. Twiddle factors and the output permutation table are
// precomputed at construction, so Transform performs no allocation and
// is safe to run on a real-time audio thread.
type FFT struct {
	size    int
	twiddle []complex64
	permute []int
}

// NewFFT creates a transform of the given size, which must be a power
// of two and at least 2.
func NewFFT(size int) (*FFT, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("fft size must be a power of two >= 2, got %d", size)
	}

	f := &FFT{
		size:    size,
		twiddle: make([]complex64, size/2),
		permute: make([]int, size),
	}

	for k := range f.twiddle {
		angle := -2.0 * math.Pi * float64(k) / float64(size)
		f.twiddle[k] = complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
	}

	logSize := bits.Len(uint(size)) - 1
	for i := range f.permute {
		f.permute[i] = int(bits.Reverse(uint(i)) >> (bits.UintSize - logSize))
	}

	return f, nil
}

// Size returns the transform length
func (f *FFT) Size() int {
	return f.size
}

// Transform runs a radix-2 decimation-in-frequency forward pass over
// bins in place. len(bins) must equal Size. The result is left in
// bit-reversed order; Permute maps a natural bin index to its storage
// position.
func (f *FFT) Transform(bins []complex64) {
	for span := f.size; span > 1; span >>= 1 {
		half := span >> 1
		stride := f.size / span

		for start := 0; start < f.size; start += span {
			for k := 0; k < half; k++ {
				u := start + k
				v := u + half

				t := bins[u] - bins[v]
				bins[u] += bins[v]
				bins[v] = t * f.twiddle[k*stride]
			}
		}
	}
}

// Permute returns the storage position of natural bin index i in the
// Transform output.
func (f *FFT) Permute(i int) int {
	return f.permute[i]
}
