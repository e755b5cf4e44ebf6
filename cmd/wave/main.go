package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asciiwave/internal/draw"
	"github.com/tomz197/asciiwave/internal/loop"
)

func main() {
	if err := run(); err != nil {
		log.Error("animation failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// Cursor escapes only go to a real terminal; piped output stays plain.
	if draw.IsTerminal(os.Stdout) {
		draw.HideCursor(os.Stdout)
		defer draw.ShowCursor(os.Stdout)
	}

	return loop.Run(context.Background(), os.Stdout, loop.Options{})
}
