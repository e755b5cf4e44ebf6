// Package wave provides the 1-D pulse simulation: oscillating wave positions
// and the height field they deposit into.
package wave

// Wave is a single pulse position bouncing inside [0, 1].
type Wave struct {
	X     float64 // Position, tracked within [0, 1] after reflection
	Speed float64 // Signed units per second
}

// Source holds the per-wave constants that shape its pulse.
type Source struct {
	WaveLength float64
	MaxHeight  float64
}

// Update advances the wave by dt seconds, reflecting off 0 and 1.
// On a bounce the speed flips and the position is re-applied from the bound
// using the new speed, so it lands one step inside the range.
func (w *Wave) Update(dt float64) {
	w.X += dt * w.Speed
	if w.X > 1.0 {
		w.Speed = -w.Speed
		w.X = 1.0 + dt*w.Speed
	} else if w.X < 0.0 {
		w.Speed = -w.Speed
		w.X = dt * w.Speed
	}
}
