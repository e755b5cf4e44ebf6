package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (f failingWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestRowWriterWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRowWriter(&buf, 4)

	require.NoError(t, rw.WriteFrame([]float64{0, 0.5, 1, 0.2}))
	assert.Equal(t, "\b\b\b\b +@:", buf.String())

	require.NoError(t, rw.WriteFrame([]float64{1, 1, 0, 0}))
	assert.Equal(t, "\b\b\b\b +@:\b\b\b\b@@  ", buf.String())
}

func TestRowWriterFlushesEveryFrame(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRowWriter(&buf, 80)

	heights := make([]float64, 80)
	for i := 0; i < 3; i++ {
		require.NoError(t, rw.WriteFrame(heights))
		assert.Equal(t, (i+1)*160, buf.Len(), "frame %d not flushed", i)
	}
	assert.Equal(t, strings.Repeat(strings.Repeat("\b", 80)+strings.Repeat(" ", 80), 3), buf.String())
}

func TestRowWriterReturnsWriteError(t *testing.T) {
	errPipe := errors.New("broken pipe")
	rw := NewRowWriter(failingWriter{err: errPipe}, 4)

	err := rw.WriteFrame([]float64{0, 0, 0, 0})
	assert.ErrorIs(t, err, errPipe)
}

func TestCursorSequences(t *testing.T) {
	var buf bytes.Buffer
	HideCursor(&buf)
	ShowCursor(&buf)
	assert.Equal(t, "\033[?25l\033[?25h", buf.String())
}
