// Package output writes result lines to a stream, serializing concurrent
// writers.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// Writer appends lines to an underlying stream. Writes are buffered and
// serialized: concurrent callers never interleave bytes within a line.
// The first write failure is sticky and every later call returns it
// without touching the stream, so in-flight work drains without producing
// partial output after a broken pipe.
type Writer struct {
	mu  sync.Mutex
	bw  *bufio.Writer
	err error
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteLine appends text plus a trailing newline as one atomic write.
func (w *Writer) WriteLine(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}
	if _, err := w.bw.WriteString(text); err != nil {
		w.err = fmt.Errorf("write output: %w", err)
		return w.err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		w.err = fmt.Errorf("write output: %w", err)
		return w.err
	}
	return nil
}

// Flush drains buffered output to the underlying stream.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = fmt.Errorf("write output: %w", err)
		return w.err
	}
	return nil
}
