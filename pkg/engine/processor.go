package engine

import (
	"github.com/phydon/sp/pkg/highlight"
	"github.com/phydon/sp/pkg/matcher"
)

// Result is the outcome of processing one line. Pass reports whether the
// line is emitted; Text carries the rendered form when it is.
type Result struct {
	Text string
	Pass bool
}

// Processor applies the compiled pattern to individual lines. It holds no
// mutable state, so one Processor is shared by every worker in a run.
type Processor struct {
	matcher     *matcher.Matcher
	highlighter *highlight.Highlighter
	filterOnly  bool
}

// NewProcessor wires a matcher and a highlighter into a per-line pipeline.
// In filter mode matching lines pass through unmodified and the rest are
// dropped; otherwise every line passes, with matched spans highlighted.
func NewProcessor(m *matcher.Matcher, h *highlight.Highlighter, filterOnly bool) *Processor {
	if h == nil {
		h = highlight.New(nil)
	}
	return &Processor{matcher: m, highlighter: h, filterOnly: filterOnly}
}

// Process matches one line and decides its fate.
func (p *Processor) Process(line string) Result {
	spans := p.matcher.FindAll(line)
	if p.filterOnly {
		if len(spans) == 0 {
			return Result{}
		}
		return Result{Text: line, Pass: true}
	}
	if len(spans) == 0 {
		return Result{Text: line, Pass: true}
	}
	return Result{Text: p.highlighter.Render(line, spans), Pass: true}
}
