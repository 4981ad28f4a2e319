// Package highlight renders match spans within a line using a
// caller-supplied marker.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phydon/sp/pkg/matcher"
)

// MarkFunc wraps matched text with its visual markers. The returned string
// must contain the input text unchanged so that stripping the markers
// restores the original line.
type MarkFunc func(text string) string

// Highlighter renders lines with their match spans visually marked. It
// holds no mutable state and is safe for concurrent use.
type Highlighter struct {
	mark MarkFunc
}

// New creates a Highlighter that wraps each span with mark. A nil mark
// leaves matched text unmodified.
func New(mark MarkFunc) *Highlighter {
	if mark == nil {
		mark = func(text string) string { return text }
	}
	return &Highlighter{mark: mark}
}

// Styled creates a Highlighter that wraps each span in the style's
// terminal escape sequences. When the output is not a terminal the style
// degrades to plain text and lines pass through unchanged.
func Styled(style lipgloss.Style) *Highlighter {
	return New(func(text string) string {
		return style.Render(text)
	})
}

// Render produces the line with every span wrapped by the marker and all
// unmatched runs copied verbatim. Spans must ascend and must not overlap,
// as produced by matcher.FindAll. An empty span list returns the line
// unchanged.
func (h *Highlighter) Render(line string, spans []matcher.Span) string {
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + len(spans)*8)

	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s.Start])
		b.WriteString(h.mark(line[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(line[last:])

	return b.String()
}
