// Package testutil provides thread-safe test doubles for the line
// pipeline's seams.
package testutil

import "sync"

// RecordingSink captures written lines. It satisfies the engine's Sink
// interface and can inject a sticky failure after a fixed number of
// successful writes.
type RecordingSink struct {
	mu        sync.Mutex
	lines     []string
	failAfter int
	failErr   error
	sticky    error
}

// NewRecordingSink creates a sink that accepts every write.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{failAfter: -1}
}

// FailAfter makes WriteLine fail once n writes have succeeded.
func (s *RecordingSink) FailAfter(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAfter = n
	s.failErr = err
}

// WriteLine implements the engine's Sink interface.
func (s *RecordingSink) WriteLine(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sticky != nil {
		return s.sticky
	}
	if s.failAfter >= 0 && len(s.lines) >= s.failAfter {
		s.sticky = s.failErr
		return s.sticky
	}
	s.lines = append(s.lines, text)
	return nil
}

// Lines returns a copy of the successfully written lines.
func (s *RecordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]string, len(s.lines))
	copy(result, s.lines)
	return result
}

// FailingReader yields its data and then a terminal error instead of EOF.
type FailingReader struct {
	mu   sync.Mutex
	data []byte
	err  error
}

// NewFailingReader creates a reader that fails with err once data is
// consumed.
func NewFailingReader(data string, err error) *FailingReader {
	return &FailingReader{data: []byte(data), err: err}
}

// Read implements the io.Reader interface.
func (r *FailingReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

// FailingWriter rejects every write with its configured error.
type FailingWriter struct {
	err error
}

// NewFailingWriter creates a writer that always fails with err.
func NewFailingWriter(err error) *FailingWriter {
	return &FailingWriter{err: err}
}

// Write implements the io.Writer interface.
func (w *FailingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
