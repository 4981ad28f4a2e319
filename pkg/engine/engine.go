// Package engine drives the matching pipeline: it reads lines from an
// input stream, applies the compiled pattern to each, and writes the
// surviving lines to a sink using either an order-preserving sequential
// strategy or an order-relaxed parallel one.
package engine

import (
	"bufio"
	"io"
	"runtime"
)

// maxLineBytes caps how long a single input line may grow before the run
// aborts with a read error.
const maxLineBytes = 1 << 20

// Sink receives rendered lines. Implementations must serialize concurrent
// WriteLine calls so one line's bytes never interleave with another's.
type Sink interface {
	WriteLine(text string) error
}

// Runner consumes an input stream to exhaustion, writing processed lines
// to the sink.
type Runner interface {
	Run(input io.Reader, sink Sink) error
}

// Options select the execution strategy for one run.
type Options struct {
	// Parallel trades input-order preservation for concurrent matching.
	Parallel bool

	// Workers is the parallel pool size. Zero or negative means one
	// worker per CPU.
	Workers int
}

// Engine runs a Processor over an input stream with the strategy chosen
// from Options.
type Engine struct {
	runner Runner
}

// New builds an Engine around proc.
func New(proc *Processor, opts Options) *Engine {
	if !opts.Parallel {
		return &Engine{runner: NewSequentialRunner(proc)}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{runner: NewParallelRunner(proc, workers)}
}

// Run processes input to exhaustion. It returns the first structural
// failure: a read error from input or a write error from the sink.
func (e *Engine) Run(input io.Reader, sink Sink) error {
	return e.runner.Run(input, sink)
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return sc
}
