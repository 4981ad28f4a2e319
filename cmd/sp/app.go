package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/phydon/sp/pkg/config"
	"github.com/phydon/sp/pkg/engine"
	"github.com/phydon/sp/pkg/highlight"
	"github.com/phydon/sp/pkg/matcher"
	"github.com/phydon/sp/pkg/output"
)

var _ engine.Sink = (*output.Writer)(nil)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config      *config.Config
	Matcher     *matcher.Matcher
	Highlighter *highlight.Highlighter
	Processor   *engine.Processor
	Engine      *engine.Engine
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, pattern string) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg}

	// Compile the pattern before anything reads input, so an invalid
	// pattern never produces partial output
	m, err := matcher.Compile(pattern)
	if err != nil {
		return nil, err
	}
	deps.Matcher = m

	// The style degrades to plain text when stdout is not a terminal
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Highlight))
	deps.Highlighter = highlight.Styled(style)

	deps.Processor = engine.NewProcessor(deps.Matcher, deps.Highlighter, cfg.FilterOnly)
	deps.Engine = engine.New(deps.Processor, engine.Options{
		Parallel: cfg.Parallel,
		Workers:  cfg.Workers,
	})

	return deps, nil
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run streams in through the engine into out, flushing buffered output
// even when the run fails.
func (a *Application) Run(in io.Reader, out io.Writer) error {
	sink := output.NewWriter(out)
	if err := a.deps.Engine.Run(in, sink); err != nil {
		_ = sink.Flush()
		return err
	}
	return sink.Flush()
}
