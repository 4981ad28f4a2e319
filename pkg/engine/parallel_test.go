package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/phydon/sp/pkg/testutil"
)

func TestParallelRunner_SetMatchesSequential(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 300; i++ {
		switch i % 3 {
		case 0:
			fmt.Fprintf(&in, "needle number %d\n", i)
		case 1:
			fmt.Fprintf(&in, "plain number %d\n", i)
		default:
			fmt.Fprintf(&in, "needle %s\n", strings.Repeat("pad", i%9))
		}
	}

	for _, filterOnly := range []bool{false, true} {
		name := "highlight"
		if filterOnly {
			name = "filter"
		}
		t.Run(name, func(t *testing.T) {
			seqSink := testutil.NewRecordingSink()
			seq := NewSequentialRunner(newTestProcessor(t, "needle", filterOnly))
			if err := seq.Run(strings.NewReader(in.String()), seqSink); err != nil {
				t.Fatalf("sequential Run() error = %v", err)
			}

			parSink := testutil.NewRecordingSink()
			par := NewParallelRunner(newTestProcessor(t, "needle", filterOnly), 8)
			if err := par.Run(strings.NewReader(in.String()), parSink); err != nil {
				t.Fatalf("parallel Run() error = %v", err)
			}

			wantLines := sortedCopy(seqSink.Lines())
			gotLines := sortedCopy(parSink.Lines())
			if len(gotLines) != len(wantLines) {
				t.Fatalf("output lines = %d, want %d", len(gotLines), len(wantLines))
			}
			for i := range wantLines {
				if gotLines[i] != wantLines[i] {
					t.Fatalf("sorted line %d = %q, want %q", i, gotLines[i], wantLines[i])
				}
			}
		})
	}
}

func TestParallelRunner_SingleWorkerPreservesOrder(t *testing.T) {
	var in strings.Builder
	var want []string
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&in, "item %02d\n", i)
		want = append(want, fmt.Sprintf("<<item>> %02d", i))
	}

	runner := NewParallelRunner(newTestProcessor(t, "item", false), 1)
	sink := testutil.NewRecordingSink()
	if err := runner.Run(strings.NewReader(in.String()), sink); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := sink.Lines()
	if len(got) != len(want) {
		t.Fatalf("output lines = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParallelRunner_ClampsWorkerCount(t *testing.T) {
	proc := newTestProcessor(t, "a", false)
	for _, n := range []int{0, -3} {
		if got := NewParallelRunner(proc, n).workers; got != 1 {
			t.Errorf("NewParallelRunner(proc, %d).workers = %d, want 1", n, got)
		}
	}
}

func TestParallelRunner_WriteErrorAborts(t *testing.T) {
	errBoom := errors.New("broken pipe")

	var in strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&in, "match %d\n", i)
	}

	sink := testutil.NewRecordingSink()
	sink.FailAfter(3, errBoom)

	runner := NewParallelRunner(newTestProcessor(t, "match", false), 4)
	err := runner.Run(strings.NewReader(in.String()), sink)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run() error = %v, want %v", err, errBoom)
	}
	if got := len(sink.Lines()); got > 3 {
		t.Errorf("output lines = %d, want at most 3", got)
	}
}

func TestParallelRunner_ReadErrorPropagates(t *testing.T) {
	errBoom := errors.New("stream torn down")

	runner := NewParallelRunner(newTestProcessor(t, "line", false), 4)
	sink := testutil.NewRecordingSink()
	input := testutil.NewFailingReader("line one\nline two\n", errBoom)

	err := runner.Run(input, sink)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run() error = %v, want wrapped %v", err, errBoom)
	}
	if !strings.Contains(err.Error(), "read input") {
		t.Errorf("Run() error = %q, want read input context", err)
	}

	// Lines delivered before the failure still drain through the pool.
	if got := len(sink.Lines()); got != 2 {
		t.Errorf("output lines = %d, want 2", got)
	}
}

func TestParallelRunner_EmptyInput(t *testing.T) {
	runner := NewParallelRunner(newTestProcessor(t, "test", false), 4)
	sink := testutil.NewRecordingSink()
	if err := runner.Run(strings.NewReader(""), sink); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := sink.Lines(); len(got) != 0 {
		t.Errorf("output lines = %d, want 0", len(got))
	}
}
