package engine

import (
	"fmt"
	"io"
	"sync"
)

// ParallelRunner distributes lines across a fixed-size worker pool. Output
// order reflects completion order, not input order.
type ParallelRunner struct {
	proc    *Processor
	workers int
}

var _ Runner = (*ParallelRunner)(nil)

// NewParallelRunner builds a pool of the given size. Sizes below one are
// raised to one, which behaves like the sequential runner apart from the
// queue hop.
func NewParallelRunner(proc *Processor, workers int) *ParallelRunner {
	if workers < 1 {
		workers = 1
	}
	return &ParallelRunner{proc: proc, workers: workers}
}

// Run feeds lines to the pool until input is exhausted or a write fails.
// After a write failure the reader stops dispatching, in-flight work
// drains, and the first write error is returned. A write error takes
// precedence over a read error when both occur.
func (r *ParallelRunner) Run(input io.Reader, sink Sink) error {
	// Bounded so input cannot pile up unboundedly ahead of the workers.
	lines := make(chan string, r.workers*16)
	done := make(chan struct{})

	var (
		errOnce  sync.Once
		writeErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			writeErr = err
			close(done)
		})
	}

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for line := range lines {
				res := r.proc.Process(line)
				if !res.Pass {
					continue
				}
				if err := sink.WriteLine(res.Text); err != nil {
					fail(err)
					return
				}
			}
		}()
	}

	var readErr error
	sc := newLineScanner(input)
scan:
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-done:
			break scan
		}
	}
	if err := sc.Err(); err != nil {
		readErr = fmt.Errorf("read input: %w", err)
	}
	close(lines)
	wg.Wait()

	if writeErr != nil {
		return writeErr
	}
	return readErr
}
