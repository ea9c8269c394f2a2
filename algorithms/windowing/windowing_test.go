package windowing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/window"
)

var testSizes = []int{128, 256, 1024, 4096}

func TestFillBounds(t *testing.T) {
	for _, choice := range Choices() {
		for _, size := range testSizes {
			dst := make([]float32, size)
			require.NoError(t, Fill(dst, choice.Value))

			for i, c := range dst {
				// Flat-top sidelobes reach about -7% of peak
				lo := float32(0.0)
				if choice.Value == Flattop {
					lo = -0.08
				}
				assert.GreaterOrEqual(t, c, lo, "%s size %d index %d", choice.Value, size, i)
				assert.LessOrEqual(t, c, float32(1.0), "%s size %d index %d", choice.Value, size, i)
			}
		}
	}
}

func TestFillFlattopHasNegativeSidelobes(t *testing.T) {
	// The 5-term flat-top family genuinely goes negative; its
	// sidelobes bottom out near -0.0706 at every size
	for _, size := range testSizes {
		dst := make([]float32, size)
		require.NoError(t, Fill(dst, Flattop))

		min := dst[0]
		for _, c := range dst {
			if c < min {
				min = c
			}
		}

		assert.InDelta(t, -0.0706, float64(min), 0.002, "size %d", size)
	}
}

func TestFillRectangular(t *testing.T) {
	dst := make([]float32, 512)
	require.NoError(t, Fill(dst, Rectangular))

	for _, c := range dst {
		assert.Equal(t, float32(1.0), c)
	}
}

func TestFillHannMatchesReference(t *testing.T) {
	const size = 256

	dst := make([]float32, size)
	require.NoError(t, Fill(dst, Hann))

	ref := make([]float64, size)
	for i := range ref {
		ref[i] = 1.0
	}
	window.Hann(ref)

	for i := range dst {
		assert.InDelta(t, ref[i], float64(dst[i]), 1e-6, "index %d", i)
	}
}

func TestFillHammingMatchesReference(t *testing.T) {
	const size = 256

	dst := make([]float32, size)
	require.NoError(t, Fill(dst, Hamming))

	ref := make([]float64, size)
	for i := range ref {
		ref[i] = 1.0
	}
	window.Hamming(ref)

	for i := range dst {
		assert.InDelta(t, ref[i], float64(dst[i]), 0.01, "index %d", i)
	}
}

func TestFillSymmetry(t *testing.T) {
	for _, typ := range []Type{Hann, BlackmanHarris, Hamming, Flattop} {
		dst := make([]float32, 1024)
		require.NoError(t, Fill(dst, typ))

		for i := 0; i < len(dst)/2; i++ {
			assert.InDelta(t, dst[i], dst[len(dst)-1-i], 1e-6, "%s index %d", typ, i)
		}
	}
}

func TestFillUnknownType(t *testing.T) {
	dst := make([]float32, 128)
	assert.Error(t, Fill(dst, Type("triangular")))
}

func TestScalingFactorIsSquaredHannSum(t *testing.T) {
	for _, size := range testSizes {
		hann := make([]float32, size)
		require.NoError(t, Fill(hann, Hann))

		sum := 0.0
		for _, c := range hann {
			sum += float64(c)
		}

		got := float64(ScalingFactor(size))
		assert.InEpsilon(t, sum*sum, got, 1e-4, "size %d", size)
	}
}

func TestChoices(t *testing.T) {
	choices := Choices()
	require.Len(t, choices, 5)
	assert.Equal(t, Hann, choices[0].Value)
	assert.Equal(t, "Hann", choices[0].Label)

	for _, c := range choices {
		assert.True(t, c.Value.Valid())
		assert.NotEmpty(t, c.Label)
	}
}

func TestTypeValid(t *testing.T) {
	assert.True(t, Hann.Valid())
	assert.True(t, Flattop.Valid())
	assert.False(t, Type("").Valid())
	assert.False(t, Type("kaiser").Valid())
}
