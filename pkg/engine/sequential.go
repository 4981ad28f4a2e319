package engine

import (
	"fmt"
	"io"
)

// SequentialRunner processes lines strictly in arrival order, writing each
// result before reading the next line.
type SequentialRunner struct {
	proc *Processor
}

var _ Runner = (*SequentialRunner)(nil)

// NewSequentialRunner builds the order-preserving runner.
func NewSequentialRunner(proc *Processor) *SequentialRunner {
	return &SequentialRunner{proc: proc}
}

// Run reads input line by line until end of stream. Output preserves input
// order exactly, minus the lines filter mode suppresses. The first read or
// write failure aborts the run without emitting further output.
func (r *SequentialRunner) Run(input io.Reader, sink Sink) error {
	sc := newLineScanner(input)
	for sc.Scan() {
		res := r.proc.Process(sc.Text())
		if !res.Pass {
			continue
		}
		if err := sink.WriteLine(res.Text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
