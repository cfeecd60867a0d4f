package bmst

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmst/pareto"
	"github.com/katalvlaran/bmst/spantree"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that an entry point received a nil graph.
	ErrNilGraph = errors.New("bmst: graph is nil")

	// ErrNoAnnotator indicates a nil weight annotator.
	ErrNoAnnotator = errors.New("bmst: weight annotator is nil")

	// ErrUnknownStrategy indicates a Strategy outside KBest and BranchAndBound.
	ErrUnknownStrategy = errors.New("bmst: unknown second phase strategy")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bmst: invalid option")
)

// Front is the Pareto front of spanning trees returned by every phase.
type Front = pareto.Front[spantree.Tree]

// Strategy selects the second phase algorithm.
type Strategy int

const (
	// BranchAndBound explores edge colorings bounded by constrained extreme fronts.
	BranchAndBound Strategy = iota
	// KBest ranks spanning trees between adjacent extreme points.
	KBest
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case BranchAndBound:
		return "branch-and-bound"
	case KBest:
		return "k-best"
	default:
		return "unknown"
	}
}

// Options configures the solvers. Use DefaultOptions to build one.
type Options struct {
	// Strategy is the second phase algorithm.
	Strategy Strategy

	// Annotator maps each edge to its two costs. Defaults to the edge weight.
	Annotator spantree.Annotator

	// Logger receives debug events for every phase. Defaults to a no-op logger.
	Logger *zap.Logger

	// TiePolicy decides which tree represents a cost reached by several trees.
	TiePolicy pareto.TiePolicy

	err error // first invalid option
}

// Option configures Options.
type Option func(*Options)

// WithStrategy selects the second phase algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != KBest && s != BranchAndBound {
			o.fail(errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(s)))
			return
		}
		o.Strategy = s
	}
}

// WithAnnotator selects how edge costs are read from the graph.
func WithAnnotator(a spantree.Annotator) Option {
	return func(o *Options) {
		if a == nil {
			o.fail(ErrNoAnnotator)
			return
		}
		o.Annotator = a
	}
}

// WithLogger attaches a zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.fail(errors.Wrap(ErrOptionViolation, "nil logger"))
			return
		}
		o.Logger = l
	}
}

// WithTiePolicy selects the equal-cost policy of the returned fronts.
func WithTiePolicy(p pareto.TiePolicy) Option {
	return func(o *Options) {
		if p != pareto.KeepFirst && p != pareto.KeepLast {
			o.fail(errors.Wrapf(ErrOptionViolation, "tie policy %d", int(p)))
			return
		}
		o.TiePolicy = p
	}
}

// DefaultOptions returns Options for BranchAndBound over the edge weights,
// with a no-op logger and KeepFirst ties, then applies opts.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Strategy:  BranchAndBound,
		Annotator: spantree.EdgeWeight,
		Logger:    zap.NewNop(),
		TiePolicy: pareto.KeepFirst,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Err returns the first invalid option recorded by DefaultOptions, if any.
func (o Options) Err() error { return o.err }

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
