package transport

// BlockProcessor accepts a block of samples of a fixed size and returns
// the most recent converted output per channel. The spectrum.Analyzer
// satisfies this contract.
type BlockProcessor interface {
	Process(block [][]float32) [][]float32
}

// Sender drives a BlockProcessor on the audio thread and publishes each
// refreshed output snapshot to a queue for the consumer side
type Sender struct {
	proc  BlockProcessor
	queue *Queue
}

// NewSender composes a processor with a queue
func NewSender(proc BlockProcessor, queue *Queue) *Sender {
	return &Sender{proc: proc, queue: queue}
}

// ProcessBlock runs the processor on one block and enqueues the
// resulting snapshot for the channels present in the block. It reports
// false when the queue was full and the snapshot was dropped.
func (s *Sender) ProcessBlock(block [][]float32) bool {
	out := s.proc.Process(block)

	channels := min(len(block), len(out))

	return s.queue.Push(channels, out[:channels])
}
