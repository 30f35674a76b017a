package discrepancy

import (
	"github.com/rs/zerolog"
)

// Options configures a Solve call.
//
// Logger     – receives phase-boundary events (group/round boundaries,
//              table growth). Defaults to a no-op logger.
// NormCap    – when true, a sum formed in the solve's j-th round
//              (counted from 0 across all target groups, not restarted
//              per group) also requires the witness's one-norm to stay
//              at or below ceil(1.2^j) before admission (spec.md
//              §4.3's optional pruning cap).
//              Defaults to false: the tube test alone already bounds
//              the table, and the norm cap only tightens pruning —
//              see DESIGN.md for the tradeoff this default encodes.
// TableHint  – initial capacity hint for the table map. Defaults to 64.
// MaxRounds  – caps K, the number of doubling rounds the engine will
//              run. 0 (the default) means uncapped: K is computed from
//              spec.md §4.3's formula and used as-is. A positive value
//              lower than the computed K bounds worst-case work at the
//              cost of treating a target only reachable in later
//              rounds as ErrNoSolution; a value at or above the
//              computed K has no effect.
type Options struct {
	Logger    zerolog.Logger
	NormCap   bool
	TableHint int
	MaxRounds int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithLogger overrides the default no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithNormCap enables the one-norm pruning cap described in spec.md
// §4.3: the solve's j-th round, counted across all target groups,
// additionally requires ||x||_1 <= ceil(1.2^j).
func WithNormCap() Option {
	return func(o *Options) {
		o.NormCap = true
	}
}

// WithTableHint overrides the default initial table-capacity hint.
// Panics if hint is not positive.
func WithTableHint(hint int) Option {
	return func(o *Options) {
		if hint <= 0 {
			panic("discrepancy: TableHint must be positive")
		}
		o.TableHint = hint
	}
}

// WithMaxRounds caps K, the number of doubling rounds the engine will
// run. Panics if rounds is not positive.
func WithMaxRounds(rounds int) Option {
	return func(o *Options) {
		if rounds <= 0 {
			panic("discrepancy: MaxRounds must be positive")
		}
		o.MaxRounds = rounds
	}
}

// DefaultOptions returns the Options a bare Solve call uses.
func DefaultOptions() Options {
	return Options{
		Logger:    zerolog.Nop(),
		NormCap:   false,
		TableHint: 64,
		MaxRounds: 0,
	}
}
