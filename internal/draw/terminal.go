package draw

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// RowWriter redraws a single terminal row in place. Each frame is written as
// one backspace per column followed by the new glyphs, so the row overwrites
// itself instead of scrolling.
type RowWriter struct {
	bufw  *bufio.Writer // Collects a whole frame into one write
	clear []byte        // One '\b' per column
	row   []byte        // Reused glyph buffer
}

// NewRowWriter creates a RowWriter for rows of the given width.
func NewRowWriter(w io.Writer, width int) *RowWriter {
	return &RowWriter{
		bufw:  bufio.NewWriterSize(w, 2*width),
		clear: bytes.Repeat([]byte{'\b'}, width),
		row:   make([]byte, 0, width),
	}
}

// WriteFrame renders heights as glyphs, writes the frame and flushes it.
func (rw *RowWriter) WriteFrame(heights []float64) error {
	rw.row = RenderRow(rw.row, heights)
	if _, err := rw.bufw.Write(rw.clear); err != nil {
		return err
	}
	if _, err := rw.bufw.Write(rw.row); err != nil {
		return err
	}
	return rw.bufw.Flush()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
