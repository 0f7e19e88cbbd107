package practice

import (
	"io"
	"log/slog"
)

// Default hint texts.
const (
	DefaultSelectHint   = "Pick the node the frontier would hand out next."
	DefaultFrontierHint = "Add a neighbour of the current node that is neither visited nor already in the frontier."
)

// Hints are the texts attached to the first rejection of each stage.
type Hints struct {
	SelectCurrent string `yaml:"current"`
	AddFrontier   string `yaml:"frontier"`
}

// DefaultHints returns the built-in texts.
func DefaultHints() Hints {
	return Hints{SelectCurrent: DefaultSelectHint, AddFrontier: DefaultFrontierHint}
}

type options struct {
	hints  Hints
	script *Script
	log    *slog.Logger
}

// Option configures a Tutor.
type Option func(*options)

// WithHints overrides hint texts; empty fields keep the defaults.
func WithHints(h Hints) Option {
	return func(o *options) {
		if h.SelectCurrent != "" {
			o.hints.SelectCurrent = h.SelectCurrent
		}
		if h.AddFrontier != "" {
			o.hints.AddFrontier = h.AddFrontier
		}
	}
}

// WithScript attaches a tutorial evaluated after every proposal.
func WithScript(s *Script) Option {
	return func(o *options) { o.script = s }
}

// WithLogger routes tutor logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func defaultOptions() options {
	return options{
		hints: DefaultHints(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
