package bmst

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/bmst/pareto"
	"github.com/katalvlaran/bmst/spantree"
	"github.com/katalvlaran/bmst/weight"
)

// solver carries the instance and resolved options shared by all phases.
type solver struct {
	inst *spantree.Instance
	log  *zap.Logger
	tie  pareto.TiePolicy
}

func (s *solver) newFront() *Front {
	return pareto.New[spantree.Tree](pareto.WithTiePolicy(s.tie))
}

// extreme computes the extreme supported front of the trees consistent with
// c (nil means unrestricted). It returns spantree.ErrInfeasible when no
// spanning tree satisfies c.
//
// Steps:
//  1. Seeds: the lexicographic optima for (x, y) and (y, x).
//  2. Equal seed costs: the instance is degenerate, the front is the seed.
//  3. Otherwise bisect the gap between the seeds.
//
// Complexity: O(k · E log E) for k extreme points.
func (s *solver) extreme(c *spantree.Coloring) (*Front, error) {
	left, err := s.inst.Lexicographic(0, c)
	if err != nil {
		return nil, err
	}
	right, err := s.inst.Lexicographic(1, c)
	if err != nil {
		return nil, err
	}

	f := s.newFront()
	f.Add(left.Cost(), left)
	if left.Cost().Equal(right.Cost()) {
		s.log.Debug("degenerate instance: lexicographic optima coincide",
			zap.Stringer("cost", left.Cost()))
		return f, nil
	}
	f.Add(right.Cost(), right)
	s.log.Debug("first phase seeds",
		zap.Stringer("left", left.Cost()),
		zap.Stringer("right", right.Cost()))

	if err = s.bisect(f, c, left, right); err != nil {
		return nil, err
	}

	return f, nil
}

// collinearTol is the relative gap below the segment l-r a tree needs to
// count as a new extreme point. Smaller gaps are rounding noise.
const collinearTol = 1e-9

// bisect searches the hull gap between l and r with the weighted sum
// perpendicular to the segment l-r. A tree strictly inside the box spanned
// by l and r and strictly below the segment is an extreme point: it is added
// and both halves are searched. An optimum equal to l or r fails the box
// test, so the recursion only ever narrows.
func (s *solver) bisect(f *Front, c *spantree.Coloring, l, r spantree.Tree) error {
	cl, cr := l.Cost(), r.Cost()
	coeffs := weight.New(cl.At(1)-cr.At(1), cr.At(0)-cl.At(0))

	t, err := s.inst.Optimum(s.inst.Scalarized(coeffs), c)
	if err != nil {
		return err
	}
	if !between(t.Cost(), cl, cr) || !below(t.Cost(), cl, coeffs) {
		return nil
	}

	f.Add(t.Cost(), t)
	s.log.Debug("extreme tree",
		zap.Stringer("cost", t.Cost()),
		zap.Float64s("coeffs", coeffs.Values()))

	if err = s.bisect(f, c, l, t); err != nil {
		return err
	}

	return s.bisect(f, c, t, r)
}

// between reports whether q lies strictly inside the box with corners l and r,
// where l is the upper-left point.
func between(q, l, r weight.Vector) bool {
	return l.At(0) < q.At(0) && q.At(0) < r.At(0) &&
		r.At(1) < q.At(1) && q.At(1) < l.At(1)
}

// below reports whether q scalarizes under coeffs to clearly less than l.
func below(q, l, coeffs weight.Vector) bool {
	scale := math.Abs(coeffs.At(0)*l.At(0)) + math.Abs(coeffs.At(1)*l.At(1))

	return q.Scalarize(coeffs) < l.Scalarize(coeffs)-collinearTol*scale
}

// splice derives the extreme front under c from the extreme front of a
// looser coloring. Father points consistent with c stay extreme; only the
// gaps they leave are searched again:
//   - no point survives: full recomputation;
//   - a lost end: the new lexicographic seed, bisected toward the nearest survivor;
//   - survivors that were not adjacent: the gap between them.
func (s *solver) splice(father *Front, c *spantree.Coloring) (*Front, error) {
	entries := father.Entries()
	keep := make([]int, 0, len(entries))
	for i, e := range entries {
		if c.Consistent(e.Value) {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return s.extreme(c)
	}

	child := s.newFront()
	for _, i := range keep {
		child.Add(entries[i].Cost, entries[i].Value)
	}

	head, tail := entries[keep[0]].Value, entries[keep[len(keep)-1]].Value
	if keep[0] != 0 {
		left, err := s.inst.Lexicographic(0, c)
		if err != nil {
			return nil, err
		}
		child.Add(left.Cost(), left)
		if !left.Cost().Equal(head.Cost()) {
			if err = s.bisect(child, c, left, head); err != nil {
				return nil, err
			}
		}
	}
	if keep[len(keep)-1] != len(entries)-1 {
		right, err := s.inst.Lexicographic(1, c)
		if err != nil {
			return nil, err
		}
		child.Add(right.Cost(), right)
		if !right.Cost().Equal(tail.Cost()) {
			if err = s.bisect(child, c, tail, right); err != nil {
				return nil, err
			}
		}
	}
	for k := 1; k < len(keep); k++ {
		if keep[k] == keep[k-1]+1 {
			continue
		}
		if err := s.bisect(child, c, entries[keep[k-1]].Value, entries[keep[k]].Value); err != nil {
			return nil, err
		}
	}

	return child, nil
}
