package wave

import "math"

// Width is the number of cells in a height field (one terminal column each).
const Width = 80

// HeightField holds the accumulated pulse intensity of every cell.
// Values are summed across waves and never clamped.
type HeightField [Width]float64

// Reset zeroes every cell.
func (f *HeightField) Reset() {
	clear(f[:])
}

// Accumulate adds a raised-cosine pulse centred at x into the field.
// The pulse reaches a quarter wavelength either side of x and peaks at
// s.MaxHeight. Cells past either edge are folded back with MirrorIndex.
func (f *HeightField) Accumulate(x float64, s Source) {
	quarter := 0.25 * s.WaveLength
	// int() truncates toward zero, which is what the cell range needs at
	// negative positions.
	start := int((x - quarter) * Width)
	end := int((x + quarter) * Width)

	for i := start; i < end; i++ {
		// Distance is measured at the unfolded cell so the reflected part of
		// the pulse keeps its shape.
		distance := math.Abs((float64(i)+0.5)/Width - x)
		height := s.MaxHeight * 0.5 * (math.Cos(math.Min(distance*math.Pi/quarter, math.Pi)) + 1.0)
		f[MirrorIndex(i, Width)] += height
	}
}

// MirrorIndex folds i back into [0, n) by reflecting once around the nearest
// edge: -1 maps to 0, n maps to n-1. Indices more than n past an edge are
// not folded again and stay out of range.
func MirrorIndex(i, n int) int {
	if i < 0 {
		return -i - 1
	}
	if i >= n {
		return 2*n - i - 1
	}
	return i
}
