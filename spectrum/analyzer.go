package spectrum

import (
	"fmt"

	"github.com/RyanBlaney/sonido-scope/algorithms/spectral"
	"github.com/RyanBlaney/sonido-scope/algorithms/windowing"
	"github.com/RyanBlaney/sonido-scope/logging"
)

// DefaultMaxFFTSize is the conventional upper bound on the transform
// size for visualization use
const DefaultMaxFFTSize = 4096

// Analyzer is the spectrum pipeline controller. It owns the window
// table, the overlapped analysis frames and the shared output buffer,
// and exposes Process as the single entry point for the audio thread.
//
// Capacities are fixed at construction. Configure may allocate; Process
// never does. Configure, SetWindowType and SetOutputType must be
// serialized against Process by the caller, e.g. at block boundaries.
type Analyzer struct {
	maxChannels int
	maxFFTSize  int

	cfg     Config
	window  []float32
	scaling float32
	fft     *spectral.FFT
	frames  []stftFrame
	out     [][]float32
	views   [][]float32

	logger logging.Logger
}

// NewAnalyzer creates an analyzer with fixed channel and transform-size
// capacities and applies the initial configuration.
func NewAnalyzer(maxChannels, maxFFTSize int, cfg Config) (*Analyzer, error) {
	if maxChannels < 1 {
		return nil, fmt.Errorf("max channels must be at least 1, got %d", maxChannels)
	}
	if !isPowerOfTwo(maxFFTSize) || maxFFTSize < MinFFTSize {
		return nil, fmt.Errorf("max fft size must be a power of two >= %d, got %d", MinFFTSize, maxFFTSize)
	}

	a := &Analyzer{
		maxChannels: maxChannels,
		maxFFTSize:  maxFFTSize,
		window:      make([]float32, maxFFTSize),
		out:         make([][]float32, maxChannels),
		views:       make([][]float32, maxChannels),
		logger: logging.WithFields(logging.Fields{
			"component": "spectrum_analyzer",
		}),
	}

	for ch := range a.out {
		a.out[ch] = make([]float32, maxFFTSize)
	}

	if err := a.Configure(cfg); err != nil {
		return nil, err
	}

	return a, nil
}

// Configure validates cfg and rebuilds the window table, the transform
// and the frame set. Every frame cursor resets to zero and the output
// buffer is zeroed for all channels.
func (a *Analyzer) Configure(cfg Config) error {
	if err := cfg.Validate(a.maxFFTSize); err != nil {
		return err
	}

	fft, err := spectral.NewFFT(cfg.FFTSize)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.fft = fft

	if err := windowing.Fill(a.window[:cfg.FFTSize], cfg.Window); err != nil {
		return err
	}
	a.scaling = windowing.ScalingFactor(cfg.FFTSize)

	a.resetFrames()

	a.logger.Debug("analyzer configured", logging.Fields{
		"fft_size": cfg.FFTSize,
		"overlap":  cfg.Overlap,
		"window":   cfg.Window,
		"output":   cfg.Output,
	})

	return nil
}

// SetWindowType swaps the window family for subsequent samples. Only
// the coefficient table is recomputed; in-flight frame state and the
// scaling factor are untouched.
func (a *Analyzer) SetWindowType(typ windowing.Type) error {
	if !typ.Valid() {
		return fmt.Errorf("unknown window type: %s", typ)
	}

	a.cfg.Window = typ
	return windowing.Fill(a.window[:a.cfg.FFTSize], typ)
}

// SetOutputType changes the encoding used for subsequently completed
// frames. In-flight frame state is untouched.
func (a *Analyzer) SetOutputType(typ OutputType) error {
	if !typ.Valid() {
		return fmt.Errorf("unknown output type: %s", typ)
	}

	a.cfg.Output = typ
	return nil
}

// Config returns the active configuration
func (a *Analyzer) Config() Config {
	return a.cfg
}

// MaxChannels returns the construction-time channel capacity
func (a *Analyzer) MaxChannels() int {
	return a.maxChannels
}

// Output returns the per-channel output views without processing.
// Each slice holds the most recently completed frame for that channel,
// encoded per the configured output type.
func (a *Analyzer) Output() [][]float32 {
	return a.views
}

// Process consumes one block of samples and returns the shared output
// buffer, one FFTSize-length slice per channel. The block must hold
// exactly FFTSize samples for every channel it carries; channels beyond
// the construction-time maximum are silently ignored.
//
// Every overlap frame receives each sample at its own cursor position,
// advancing in slot order per sample. When a frame's cursor reaches
// the transform size the frame is transformed, encoded into the output
// buffer and reused from position zero. Process performs no allocation,
// takes no locks and runs to completion on the calling thread.
func (a *Analyzer) Process(block [][]float32) [][]float32 {
	n := a.cfg.FFTSize

	nChans := min(len(block), a.maxChannels)

	for s := 0; s < n; s++ {
		for i := range a.frames {
			frame := &a.frames[i]

			for ch := 0; ch < nChans; ch++ {
				frame.bins[ch][frame.pos] = complex(block[ch][s]*a.window[frame.pos], 0)
			}

			frame.pos++

			if frame.pos >= n {
				frame.pos = 0

				for ch := 0; ch < nChans; ch++ {
					a.emit(frame, ch)
				}
			}
		}
	}

	return a.views
}

// resetFrames resizes the frame set to the configured overlap count,
// zeroes all bins and cursors, and zeroes the output buffer
func (a *Analyzer) resetFrames() {
	needAlloc := len(a.frames) != a.cfg.Overlap
	if !needAlloc && len(a.frames) > 0 && a.frames[0].size() != a.cfg.FFTSize {
		needAlloc = true
	}

	if needAlloc {
		a.frames = make([]stftFrame, a.cfg.Overlap)
		for i := range a.frames {
			a.frames[i] = newSTFTFrame(a.maxChannels, a.cfg.FFTSize)
		}
	} else {
		for i := range a.frames {
			a.frames[i].reset()
		}
	}

	for ch := range a.out {
		clear(a.out[ch])
		a.views[ch] = a.out[ch][:a.cfg.FFTSize]
	}
}
