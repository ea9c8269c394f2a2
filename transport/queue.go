package transport

import (
	"fmt"
	"sync/atomic"
)

// Packet is one spectral snapshot carried from the audio thread to a
// consumer. Storage is fixed at construction; Channels and Bins record
// the active extent after a copy.
type Packet struct {
	Channels int
	Bins     int
	Data     [][]float32
}

// NewPacket allocates packet storage for the given capacities
func NewPacket(maxChannels, maxBins int) Packet {
	data := make([][]float32, maxChannels)
	for ch := range data {
		data[ch] = make([]float32, maxBins)
	}
	return Packet{Data: data}
}

func (p *Packet) copyFrom(channels int, bins [][]float32) {
	channels = min(channels, len(p.Data))

	p.Channels = channels
	p.Bins = 0

	for ch := 0; ch < channels; ch++ {
		n := min(len(bins[ch]), len(p.Data[ch]))
		copy(p.Data[ch][:n], bins[ch][:n])
		p.Bins = n
	}
}

// Queue is a fixed-capacity single-producer/single-consumer ring of
// spectral packets. Push copies in without blocking or allocating, so
// it is safe on the audio thread; Pop copies out on the consumer side.
// Exactly one goroutine may push and exactly one may pop.
type Queue struct {
	slots []Packet
	head  atomic.Uint64
	tail  atomic.Uint64
}

// NewQueue creates a queue holding up to capacity packets, each sized
// for maxChannels channels of maxBins values
func NewQueue(capacity, maxChannels, maxBins int) (*Queue, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("queue capacity must be at least 1, got %d", capacity)
	}
	if maxChannels < 1 {
		return nil, fmt.Errorf("max channels must be at least 1, got %d", maxChannels)
	}
	if maxBins < 1 {
		return nil, fmt.Errorf("max bins must be at least 1, got %d", maxBins)
	}

	q := &Queue{slots: make([]Packet, capacity)}
	for i := range q.slots {
		q.slots[i] = NewPacket(maxChannels, maxBins)
	}

	return q, nil
}

// Push copies one snapshot into the queue. It reports false when the
// queue is full: the snapshot is dropped rather than blocking the
// producer.
func (q *Queue) Push(channels int, bins [][]float32) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() >= uint64(len(q.slots)) {
		return false
	}

	q.slots[tail%uint64(len(q.slots))].copyFrom(channels, bins)
	q.tail.Store(tail + 1)

	return true
}

// Pop copies the oldest snapshot into dst, which must have been created
// with at least the queue's capacities. It reports false when the queue
// is empty.
func (q *Queue) Pop(dst *Packet) bool {
	head := q.head.Load()
	if head == q.tail.Load() {
		return false
	}

	slot := &q.slots[head%uint64(len(q.slots))]
	dst.Channels = slot.Channels
	dst.Bins = slot.Bins
	for ch := 0; ch < slot.Channels; ch++ {
		copy(dst.Data[ch][:slot.Bins], slot.Data[ch][:slot.Bins])
	}

	q.head.Store(head + 1)

	return true
}

// Len returns the number of queued packets
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}
