package bmst

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/spantree"
	"github.com/katalvlaran/bmst/weight"
)

// FirstPhase returns the extreme supported spanning trees of g.
//
// Errors:
//   - ErrNilGraph, ErrNoAnnotator, ErrUnknownStrategy, ErrOptionViolation.
//   - spantree.ErrEmptyGraph, ErrDimension, ErrBadWeight, ErrDisconnected (wrapped).
func FirstPhase(g *core.Graph, opts ...Option) (*Front, error) {
	s, err := newSolver(g, DefaultOptions(opts...))
	if err != nil {
		return nil, err
	}

	f, err := s.extreme(nil)
	if err != nil {
		return nil, errors.Wrap(err, "bmst: first phase")
	}
	s.log.Debug("first phase done", zap.Int("extreme", f.Len()))

	return f, nil
}

// SecondPhase completes extreme, the result of FirstPhase on the same graph
// and options, into the full Pareto front with the configured Strategy.
// A nil extreme front is computed first.
//
// Errors: as FirstPhase.
func SecondPhase(g *core.Graph, extreme *Front, opts ...Option) (*Front, error) {
	o := DefaultOptions(opts...)
	s, err := newSolver(g, o)
	if err != nil {
		return nil, err
	}

	return s.second(extreme, o.Strategy)
}

// Solve runs FirstPhase and SecondPhase.
func Solve(g *core.Graph, opts ...Option) (*Front, error) {
	o := DefaultOptions(opts...)
	s, err := newSolver(g, o)
	if err != nil {
		return nil, err
	}

	front, err := s.second(nil, o.Strategy)
	if err != nil {
		return nil, err
	}
	s.log.Info("pareto front computed",
		zap.Stringer("strategy", o.Strategy),
		zap.Int("vertices", s.inst.N()),
		zap.Int("edges", s.inst.M()),
		zap.Int("trees", front.Len()))

	return front, nil
}

func newSolver(g *core.Graph, o Options) (*solver, error) {
	if err := o.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	inst, err := spantree.NewInstance(g, o.Annotator)
	if err != nil {
		return nil, errors.Wrap(err, "bmst")
	}

	return &solver{inst: inst, log: o.Logger, tie: o.TiePolicy}, nil
}

func (s *solver) second(extreme *Front, strategy Strategy) (*Front, error) {
	var err error
	if extreme == nil {
		if extreme, err = s.extreme(nil); err != nil {
			return nil, errors.Wrap(err, "bmst: first phase")
		}
	}
	if extreme.Len() < 2 {
		out := s.newFront()
		out.Merge(extreme)
		return out, nil
	}

	var front *Front
	switch strategy {
	case KBest:
		front, err = s.kBest(extreme)
	case BranchAndBound:
		front, err = s.branchAndBound(extreme)
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(strategy))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "bmst: %s", strategy)
	}
	s.log.Debug("second phase done",
		zap.Stringer("strategy", strategy),
		zap.Int("extreme", extreme.Len()),
		zap.Int("front", front.Len()))

	return front, nil
}

// Solution is a front entry rendered against the source graph.
type Solution struct {
	Cost    weight.Vector
	EdgeIDs []string
}

// Solutions renders every tree of f as edge IDs of the graph it was
// computed on, in front order.
func Solutions(f *Front) []Solution {
	out := make([]Solution, 0, f.Len())
	for cost, t := range f.All() {
		out = append(out, Solution{Cost: cost, EdgeIDs: t.EdgeIDs()})
	}

	return out
}
