// Package matcher compiles a search pattern once and locates its matches
// within individual lines.
package matcher

import (
	"fmt"

	"github.com/coregx/coregex"
)

// Span marks one match as a half-open [Start, End) byte range within a line.
type Span struct {
	Start int
	End   int
}

// Matcher holds a compiled pattern. It is immutable after Compile and safe
// for concurrent use by multiple goroutines.
type Matcher struct {
	re      *coregex.Regex
	pattern string
}

// Compile compiles the pattern text into a reusable Matcher. A malformed
// pattern is a fatal input error; callers must surface it before reading
// any input.
func Compile(pattern string) (*Matcher, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &Matcher{re: re, pattern: pattern}, nil
}

// Pattern returns the original pattern text.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// FindAll returns the spans of all non-overlapping matches in line, in
// ascending order. It returns nil when the line has no match; no match is
// a normal outcome, not an error. The scan always advances past a
// zero-width match, so patterns that match the empty string terminate and
// yield at most one span per position.
func (m *Matcher) FindAll(line string) []Span {
	pairs := m.re.FindAllStringIndex(line, -1)
	if len(pairs) == 0 {
		return nil
	}

	spans := make([]Span, 0, len(pairs))
	for _, p := range pairs {
		if len(p) < 2 {
			continue
		}
		spans = append(spans, Span{Start: p[0], End: p[1]})
	}
	return spans
}

// Match reports whether line contains at least one match.
func (m *Matcher) Match(line string) bool {
	return m.re.MatchString(line)
}
