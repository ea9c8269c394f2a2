package vis

import (
	"fmt"
	"math"
)

// Point is one normalized curve coordinate. X spans the configured
// frequency range and Y the configured decibel range, both nominally
// in [0, 1].
type Point struct {
	X float64
	Y float64
}

// AxisMap converts spectral magnitudes into normalized curve
// coordinates on a log-frequency, log-power display. It belongs to the
// consumer side of the transport, not the audio thread.
type AxisMap struct {
	sampleRate float64

	freqLo, freqHi float64
	logXLo, logXHi float64
	logYLo, logYHi float64
	powerFloor     float64
}

// NewAxisMap creates a map with the conventional audio defaults,
// 20 Hz - 20 kHz and -90..0 dB. The sample rate must put Nyquist above
// 20 kHz; use SetFreqRange for lower rates.
func NewAxisMap(sampleRate float64) (*AxisMap, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %g", sampleRate)
	}

	m := &AxisMap{sampleRate: sampleRate}

	if err := m.SetFreqRange(20.0, 20000.0); err != nil {
		return nil, err
	}
	if err := m.SetDBRange(-90.0, 0.0); err != nil {
		return nil, err
	}

	return m, nil
}

// SetFreqRange sets the displayed frequency range in Hz. The low bound
// must be positive and the high bound below Nyquist.
func (m *AxisMap) SetFreqRange(freqLo, freqHi float64) error {
	nyquist := m.sampleRate / 2.0

	if freqLo <= 0 {
		return fmt.Errorf("low frequency must be positive, got %g", freqLo)
	}
	if freqHi <= freqLo {
		return fmt.Errorf("high frequency %g must exceed low frequency %g", freqHi, freqLo)
	}
	if freqHi >= nyquist {
		return fmt.Errorf("high frequency %g must be below nyquist %g", freqHi, nyquist)
	}

	m.freqLo = freqLo
	m.freqHi = freqHi
	m.logXLo = math.Log(freqLo / nyquist)
	m.logXHi = math.Log(freqHi / nyquist)

	return nil
}

// SetDBRange sets the displayed power range in decibels
func (m *AxisMap) SetDBRange(dbLo, dbHi float64) error {
	if dbHi <= dbLo {
		return fmt.Errorf("high bound %g dB must exceed low bound %g dB", dbHi, dbLo)
	}

	m.powerFloor = math.Pow(10.0, dbLo/10.0)
	m.logYLo = math.Log(m.powerFloor)
	m.logYHi = math.Log(math.Pow(10.0, dbHi/10.0))

	return nil
}

// FreqRange returns the displayed frequency bounds in Hz
func (m *AxisMap) FreqRange() (float64, float64) {
	return m.freqLo, m.freqHi
}

// XNorm maps a frequency expressed as a fraction of Nyquist (bin index
// over bin count) onto the log-frequency axis. The fraction must be
// positive; the DC bin has no position on a log axis.
func (m *AxisMap) XNorm(binFrac float64) float64 {
	return (math.Log(binFrac) - m.logXLo) / (m.logXHi - m.logXLo)
}

// YNorm maps linear power onto the decibel axis. Power at or below the
// bottom of the range clamps to 0, so silence and negative inputs are
// well defined.
func (m *AxisMap) YNorm(power float64) float64 {
	if power < m.powerFloor {
		power = m.powerFloor
	}
	return (math.Log(power) - m.logYLo) / (m.logYHi - m.logYLo)
}

// Curve converts magnitude bins (DC first, Nyquist last) into
// normalized points. Magnitudes are squared into power before the
// decibel mapping. The DC bin is skipped.
func (m *AxisMap) Curve(magnitude []float64) []Point {
	if len(magnitude) < 2 {
		return nil
	}

	points := make([]Point, 0, len(magnitude)-1)
	xRecip := 1.0 / float64(len(magnitude))

	for bin := 1; bin < len(magnitude); bin++ {
		mag := magnitude[bin]
		points = append(points, Point{
			X: m.XNorm(float64(bin) * xRecip),
			Y: m.YNorm(mag * mag),
		})
	}

	return points
}
