package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaySessionTooNarrow(t *testing.T) {
	var buf bytes.Buffer
	err := playSession(context.Background(), &buf, 60)

	require.ErrorIs(t, err, errTooNarrow)
	assert.Equal(t, "Your terminal is 60 columns wide; the wave needs 80.\r\n", buf.String())
}

func TestPlaySessionClientGone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.NoError(t, playSession(ctx, &buf, 80))

	// Cursor is hidden and restored, no frames and no trailing newline.
	assert.Equal(t, "\033[?25l\033[?25h", buf.String())
}
