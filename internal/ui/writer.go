package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/sm-menu/cli/internal/domain"
	"golang.org/x/term"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out io.Writer
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// IsTerminal reports whether the writer is attached to a terminal.
func (w *Writer) IsTerminal() bool {
	return IsTerminal(w.out)
}

// IsTerminal reports whether w is a file attached to a terminal. Buffers and
// pipes are not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
