package steinitz

import (
	"github.com/rs/zerolog"
)

// Options configures a Solve call.
//
// Logger   – receives phase-boundary events (graph construction depth,
//            surface size, Bellman-Ford sweep count). Defaults to a
//            no-op logger; callers that want console output pass
//            WithLogger(zerolog.New(os.Stderr)) or similar.
// NodeHint – initial node-capacity hint for the underlying vgraph.Graph,
//            amortising reallocation for problems whose surface is
//            known to grow large. Defaults to 64.
// MaxDepth – caps the number of BFS-by-depth rounds buildGraph will run.
//            0 (the default) means unlimited: expansion runs until the
//            surface runs dry on its own, per spec.md §4.2. A positive
//            value bounds worst-case work at the cost of treating a
//            target reachable only beyond that depth as ErrNoSolution.
type Options struct {
	Logger   zerolog.Logger
	NodeHint int
	MaxDepth int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithLogger overrides the default no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithNodeHint overrides the default initial node-capacity hint. Panics
// if hint is not positive.
func WithNodeHint(hint int) Option {
	return func(o *Options) {
		if hint <= 0 {
			panic("steinitz: NodeHint must be positive")
		}
		o.NodeHint = hint
	}
}

// WithMaxDepth caps the number of BFS-by-depth rounds buildGraph will
// run. Panics if depth is not positive.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth <= 0 {
			panic("steinitz: MaxDepth must be positive")
		}
		o.MaxDepth = depth
	}
}

// DefaultOptions returns the Options a bare Solve call uses.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		NodeHint: 64,
		MaxDepth: 0,
	}
}
