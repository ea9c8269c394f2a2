package spectrum

// stftFrame is one overlap slot: a write cursor plus per-channel
// complex bins. Bins hold windowed time-domain samples while the frame
// fills and transformed spectra once it completes.
type stftFrame struct {
	pos  int
	bins [][]complex64
}

func newSTFTFrame(channels, size int) stftFrame {
	bins := make([][]complex64, channels)
	for ch := range bins {
		bins[ch] = make([]complex64, size)
	}
	return stftFrame{bins: bins}
}

// reset zeroes every bin and returns the cursor to the frame start
func (f *stftFrame) reset() {
	f.pos = 0
	for ch := range f.bins {
		clear(f.bins[ch])
	}
}

// size returns the frame length in samples
func (f *stftFrame) size() int {
	if len(f.bins) == 0 {
		return 0
	}
	return len(f.bins[0])
}
