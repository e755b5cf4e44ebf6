// Package loop drives the animation: step the simulation, draw the row, sleep.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/asciiwave/internal/draw"
	"github.com/tomz197/asciiwave/internal/loop/config"
	"github.com/tomz197/asciiwave/internal/wave"
)

// SleepFunc pauses between frames.
type SleepFunc func(time.Duration)

// Options overrides the compiled-in pacing. Zero values keep the defaults.
type Options struct {
	Frames    int
	FrameTime time.Duration
	Sleep     SleepFunc
}

func (o Options) withDefaults() Options {
	if o.Frames <= 0 {
		o.Frames = config.FrameCount
	}
	if o.FrameTime <= 0 {
		o.FrameTime = config.FrameTime
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	return o
}

// Run plays the animation into w and returns once every frame is drawn.
// It stops early if ctx is cancelled or a write to w fails.
func Run(ctx context.Context, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	state := NewState()
	rw := draw.NewRowWriter(w, wave.Width)

	for state.Frame < opts.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		state.Step()

		if err := rw.WriteFrame(state.Field[:]); err != nil {
			return fmt.Errorf("draw frame %d: %w", state.Frame, err)
		}

		// Fixed sleep; time spent stepping and drawing is not subtracted.
		opts.Sleep(opts.FrameTime)
	}

	return nil
}
