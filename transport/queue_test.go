package transport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-scope/spectrum"
	"github.com/RyanBlaney/sonido-scope/transport"
)

func TestQueueValidation(t *testing.T) {
	_, err := transport.NewQueue(0, 1, 256)
	assert.Error(t, err)

	_, err = transport.NewQueue(4, 0, 256)
	assert.Error(t, err)

	_, err = transport.NewQueue(4, 1, 0)
	assert.Error(t, err)
}

func TestQueuePushPopRoundTrip(t *testing.T) {
	q, err := transport.NewQueue(4, 2, 8)
	require.NoError(t, err)

	src := [][]float32{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{8, 7, 6, 5, 4, 3, 2, 1},
	}

	require.True(t, q.Push(2, src))
	assert.Equal(t, 1, q.Len())

	// Push copies: mutating the source afterwards must not affect the
	// queued packet
	src[0][0] = 99

	dst := transport.NewPacket(2, 8)
	require.True(t, q.Pop(&dst))

	assert.Equal(t, 2, dst.Channels)
	assert.Equal(t, 8, dst.Bins)
	assert.Equal(t, float32(1), dst.Data[0][0])
	assert.Equal(t, float32(8), dst.Data[1][0])

	assert.Equal(t, 0, q.Len())
	assert.False(t, q.Pop(&dst))
}

func TestQueueFullDropsSnapshot(t *testing.T) {
	q, err := transport.NewQueue(2, 1, 4)
	require.NoError(t, err)

	bins := [][]float32{{1, 2, 3, 4}}

	assert.True(t, q.Push(1, bins))
	assert.True(t, q.Push(1, bins))
	assert.False(t, q.Push(1, bins))
	assert.Equal(t, 2, q.Len())

	dst := transport.NewPacket(1, 4)
	require.True(t, q.Pop(&dst))
	assert.True(t, q.Push(1, bins))
}

func TestQueueOrdering(t *testing.T) {
	q, err := transport.NewQueue(3, 1, 1)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.True(t, q.Push(1, [][]float32{{float32(i)}}))
	}

	dst := transport.NewPacket(1, 1)
	for i := 1; i <= 3; i++ {
		require.True(t, q.Pop(&dst))
		assert.Equal(t, float32(i), dst.Data[0][0])
	}
}

func TestSenderPublishesAnalyzerOutput(t *testing.T) {
	const n = 256
	const bin = 12

	analyzer, err := spectrum.NewAnalyzer(1, 4096, spectrum.Config{
		FFTSize: n,
		Overlap: 2,
		Window:  "hann",
		Output:  spectrum.OutputMagnitude,
	})
	require.NoError(t, err)

	queue, err := transport.NewQueue(8, 1, n)
	require.NoError(t, err)

	sender := transport.NewSender(analyzer, queue)

	block := make([]float32, n)
	for s := range block {
		block[s] = float32(math.Cos(2 * math.Pi * bin * float64(s) / n))
	}

	require.True(t, sender.ProcessBlock([][]float32{block}))
	require.Equal(t, 1, queue.Len())

	packet := transport.NewPacket(1, n)
	require.True(t, queue.Pop(&packet))

	assert.Equal(t, 1, packet.Channels)
	assert.Equal(t, n, packet.Bins)

	peakIdx := 0
	var peak float32
	for i := 0; i < n/2; i++ {
		if packet.Data[0][i] > peak {
			peak = packet.Data[0][i]
			peakIdx = i
		}
	}
	assert.Equal(t, bin, peakIdx)
}
