package windowing

// fillRectangular writes a boxcar table: every coefficient is 1.0
func fillRectangular(dst []float32) {
	for i := range dst {
		dst[i] = 1.0
	}
}
