package solver

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for solver construction.
var (
	// ErrNilPuzzle indicates that a nil *puzzle.Puzzle was passed to New.
	ErrNilPuzzle = errors.New("solver: puzzle is nil")
	// ErrBadIterations indicates a non-positive MaxIterations.
	ErrBadIterations = errors.New("solver: MaxIterations must be positive")
	// ErrBadAttempts indicates a non-positive MaxAttempts.
	ErrBadAttempts = errors.New("solver: MaxAttempts must be positive")
)

// Default search budgets. They bound memory and time growth; exhausting
// them is a normal negative result, not an error.
const (
	DefaultMaxIterations = 100_000
	DefaultMaxAttempts   = 5
)

// Options configures a search instance.
//
// MaxIterations – queue pops allowed per attempt.
// MaxAttempts   – restarts before giving up.
// Seed          – base seed for restart tie-break jitter; 0 selects a
// fixed default so runs stay reproducible by default.
// Logger        – optional diagnostics sink; nil discards.
type Options struct {
	MaxIterations int
	MaxAttempts   int
	Seed          int64
	Logger        logrus.FieldLogger
}

// Option is a functional option for configuring the solver.
type Option func(*Options)

// WithMaxIterations caps the number of queue pops per attempt.
// Must be positive; invalid values panic to signal misconfiguration early.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithMaxAttempts caps the number of restarts.
// Must be positive; invalid values panic to signal misconfiguration early.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadAttempts.Error())
		}
		o.MaxAttempts = n
	}
}

// WithSeed sets the base seed for restart tie-break jitter.
// Seed 0 keeps the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger installs a diagnostics logger. Attempts log their iteration
// counts and outcomes at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with the default budgets, the fixed
// default seed, and no logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		MaxAttempts:   DefaultMaxAttempts,
	}
}
