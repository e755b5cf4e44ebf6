package loop

import (
	"github.com/tomz197/asciiwave/internal/loop/config"
	"github.com/tomz197/asciiwave/internal/wave"
)

// State holds everything the animation mutates between frames.
type State struct {
	X     wave.Wave        // Shorter, taller pulse
	Y     wave.Wave        // Longer, flatter pulse
	Field wave.HeightField // Rebuilt from scratch every frame
	Frame int              // Frames stepped so far
}

// NewState creates the state for frame 0.
func NewState() *State {
	return &State{
		X: config.InitialX,
		Y: config.InitialY,
	}
}

// Step advances both waves by one tick and rebuilds the height field.
func (s *State) Step() {
	s.X.Update(config.TimeStep)
	s.Y.Update(config.TimeStep)

	s.Field.Reset()
	s.Field.Accumulate(s.X.X, config.SourceX)
	s.Field.Accumulate(s.Y.X, config.SourceY)

	s.Frame++
}
