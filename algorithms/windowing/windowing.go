package windowing

import (
	"fmt"
)

// Type identifies a window family
type Type string

const (
	Hann           Type = "hann"
	BlackmanHarris Type = "blackman_harris"
	Hamming        Type = "hamming"
	Flattop        Type = "flattop"
	Rectangular    Type = "rectangular"
)

// Valid reports whether t names a known window family
func (t Type) Valid() bool {
	switch t {
	case Hann, BlackmanHarris, Hamming, Flattop, Rectangular:
		return true
	}
	return false
}

// Choice pairs a window type with a display label, for populating
// option lists in a UI layer
type Choice struct {
	Value Type
	Label string
}

// Choices returns the selectable window families in display order
func Choices() []Choice {
	return []Choice{
		{Hann, "Hann"},
		{BlackmanHarris, "BlackmanHarris"},
		{Hamming, "Hamming"},
		{Flattop, "Flattop"},
		{Rectangular, "Rectangular"},
	}
}

// Fill writes the coefficient table for the given window family into
// dst, one coefficient per sample position. The table length is
// len(dst); tables are symmetric (denominator len(dst)-1). Fill does
// not allocate.
func Fill(dst []float32, typ Type) error {
	if len(dst) < 2 {
		// Degenerate table, every family collapses to unity
		for i := range dst {
			dst[i] = 1.0
		}
		return nil
	}

	switch typ {
	case Hann:
		fillHann(dst)
	case BlackmanHarris:
		fillBlackmanHarris(dst)
	case Hamming:
		fillHamming(dst)
	case Flattop:
		fillFlattop(dst)
	case Rectangular:
		fillRectangular(dst)
	default:
		return fmt.Errorf("unknown window type: %s", typ)
	}

	return nil
}
