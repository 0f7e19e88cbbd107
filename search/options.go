package search

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Default clock settings.
const (
	DefaultStepInterval = 200 * time.Millisecond
	DefaultMinInterval  = 10 * time.Millisecond
	DefaultMaxInterval  = 2 * time.Second
)

// Options holds Ticker construction parameters.
type Options struct {
	// StepInterval is the accumulated time that fires one step.
	StepInterval time.Duration

	// MinInterval and MaxInterval bound SetStepInterval.
	MinInterval time.Duration
	MaxInterval time.Duration

	// Logger receives debug records for starts, steps and outcomes.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures a Ticker. Invalid values are recorded and surfaced as
// ErrOptionViolation by NewTicker.
type Option func(*Options)

// DefaultOptions returns the defaults: 200ms interval within [10ms, 2s]
// and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		StepInterval: DefaultStepInterval,
		MinInterval:  DefaultMinInterval,
		MaxInterval:  DefaultMaxInterval,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStepInterval sets the initial interval; it is clamped to the bounds.
func WithStepInterval(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: step interval must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.StepInterval = d
	}
}

// WithIntervalBounds sets the range accepted by SetStepInterval.
//
//	0 < min ≤ max, otherwise ErrOptionViolation
func WithIntervalBounds(min, max time.Duration) Option {
	return func(o *Options) {
		if min <= 0 || min > max {
			o.err = fmt.Errorf("%w: interval bounds [%v, %v]", ErrOptionViolation, min, max)
			return
		}
		o.MinInterval = min
		o.MaxInterval = max
	}
}

// WithLogger routes ticker logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
