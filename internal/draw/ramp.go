package draw

import "math"

// Ramp lists the glyphs used for intensity, sparsest to densest.
const Ramp = " .:~=+*#%@"

// RampIndex returns the ramp position for a height.
// Heights of 1.0 and above all map to the densest glyph.
// Heights are assumed non-negative.
func RampIndex(height float64) int {
	idx := int(math.Floor(float64(len(Ramp)) * height))
	if idx > len(Ramp)-1 {
		idx = len(Ramp) - 1
	}
	return idx
}

// Glyph returns the ramp character for a height.
func Glyph(height float64) byte {
	return Ramp[RampIndex(height)]
}

// RenderRow fills dst with one glyph per height and returns it.
// dst is grown if it is shorter than heights.
func RenderRow(dst []byte, heights []float64) []byte {
	if cap(dst) < len(heights) {
		dst = make([]byte, len(heights))
	}
	dst = dst[:len(heights)]
	for i, h := range heights {
		dst[i] = Glyph(h)
	}
	return dst
}
