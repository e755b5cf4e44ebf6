package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tomz197/asciiwave/internal/draw"
	"github.com/tomz197/asciiwave/internal/loop"
	"github.com/tomz197/asciiwave/internal/wave"
)

// errTooNarrow is returned when the client terminal cannot fit the row.
var errTooNarrow = errors.New("terminal too narrow")

// playSession runs one full animation into w for a terminal of the given
// width. A cancelled ctx (client gone) is not reported as an error.
func playSession(ctx context.Context, w io.Writer, width int) error {
	if width < wave.Width {
		fmt.Fprintf(w, "Your terminal is %d columns wide; the wave needs %d.\r\n", width, wave.Width)
		return fmt.Errorf("%w: %d < %d", errTooNarrow, width, wave.Width)
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)

	err := loop.Run(ctx, w, loop.Options{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	// Leave the client's prompt on a fresh line.
	_, err = io.WriteString(w, "\r\n")
	return err
}
