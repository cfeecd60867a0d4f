package bmst

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmst/spantree"
	"github.com/katalvlaran/bmst/unionfind"
	"github.com/katalvlaran/bmst/weight"
)

// search is the state of one branch-and-bound run. The coloring is mutated
// strictly LIFO: every change is undone before its frame returns.
type search struct {
	*solver
	col   *spantree.Coloring
	upper *Front

	nodes, pruned, leaves int
}

// branchAndBound completes the extreme front by exploring edge colorings.
func (s *solver) branchAndBound(extreme *Front) (*Front, error) {
	upper := s.newFront()
	upper.Merge(extreme)

	bb := &search{solver: s, col: spantree.NewColoring(s.inst.M()), upper: upper}
	if err := bb.node(extreme); err != nil {
		return nil, err
	}

	s.log.Debug("branch-and-bound done",
		zap.Int("nodes", bb.nodes),
		zap.Int("pruned", bb.pruned),
		zap.Int("leaves", bb.leaves))

	return upper, nil
}

// node explores the subtree of the current coloring whose extreme front is lower.
func (bb *search) node(lower *Front) error {
	bb.nodes++
	undo := bb.ban()
	defer func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}()

	avail := bb.col.Edges(spantree.Available)
	mand := bb.col.Edges(spantree.Mandatory)
	if len(avail) == 0 || len(avail)+len(mand) == bb.inst.N()-1 {
		bb.leaf(append(avail, mand...))
		return nil
	}

	e := bb.branchEdge(avail)
	for _, col := range []spantree.Color{spantree.Mandatory, spantree.Forbidden} {
		if err := bb.branch(lower, e, col); err != nil {
			return err
		}
	}

	return nil
}

// branch colors e with col, bounds the restricted problem and descends.
func (bb *search) branch(father *Front, e int, col spantree.Color) error {
	defer bb.col.Set(e, col)()

	if !bb.inst.Connected(bb.col) {
		return nil
	}
	lower, err := bb.splice(father, bb.col)
	if errors.Is(err, spantree.ErrInfeasible) {
		return nil
	}
	if err != nil {
		return err
	}

	for cost, t := range lower.All() {
		bb.upper.Add(cost, t)
	}
	if bb.bound(lower) {
		bb.pruned++
		bb.log.Debug("branch pruned",
			zap.Int("edge", e),
			zap.Stringer("color", col),
			zap.Int("lower", lower.Len()))
		return nil
	}

	return bb.node(lower)
}

// leaf offers the remaining edges when they form a spanning tree.
func (bb *search) leaf(edges []int) {
	t, err := bb.inst.TreeOf(edges)
	if err != nil {
		return
	}
	bb.leaves++
	if bb.upper.Add(t.Cost(), t) {
		bb.log.Debug("leaf tree recorded", zap.Stringer("cost", t.Cost()))
	}
}

// branchEdge picks the Available edge with the smallest single cost,
// ties broken by index.
func (bb *search) branchEdge(avail []int) int {
	best, bestKey := -1, 0.0
	for _, i := range avail {
		w := bb.inst.Weight(i)
		if k := min(w.At(0), w.At(1)); best < 0 || k < bestKey {
			best, bestKey = i, k
		}
	}

	return best
}

// ban forbids, until nothing changes, every Available edge that closes a
// cycle whose other edges are Mandatory or weakly dominate it: any tree
// using it is matched by an exchange that is no worse.
// It returns the restore functions in application order.
func (bb *search) ban() []func() {
	var undo []func()
	for changed := true; changed; {
		changed = false
		for i := 0; i < bb.inst.M(); i++ {
			if bb.col.Color(i) != spantree.Available || !bb.dominatedCycle(i) {
				continue
			}
			undo = append(undo, bb.col.Set(i, spantree.Forbidden))
			changed = true
		}
	}
	if len(undo) > 0 {
		bb.log.Debug("edges banned", zap.Int("count", len(undo)))
	}

	return undo
}

func (bb *search) dominatedCycle(i int) bool {
	w := bb.inst.Weight(i)
	dsu := unionfind.New(bb.inst.N())
	for j := 0; j < bb.inst.M(); j++ {
		if j == i {
			continue
		}
		switch bb.col.Color(j) {
		case spantree.Forbidden:
			continue
		case spantree.Available:
			if !bb.inst.Weight(j).WeaklyDominates(w) {
				continue
			}
		}
		u, v := bb.inst.Ends(j)
		dsu.Union(u, v)
	}
	u, v := bb.inst.Ends(i)

	return dsu.Connected(u, v)
}

// bound reports whether the branch with extreme front lower can be
// discarded: no corner of the upper staircase lies strictly inside the
// region above the lower envelope.
func (bb *search) bound(lower *Front) bool {
	pts := lower.Costs()
	for _, q := range bb.upper.Corners() {
		if interior(q, pts) {
			return false
		}
	}

	return true
}

// interior reports whether q lies strictly above the piecewise linear
// envelope through pts (sorted by x) and strictly right of its first point
// and strictly above its last.
func interior(q weight.Vector, pts []weight.Vector) bool {
	if len(pts) == 0 {
		return false
	}
	qx, qy := q.At(0), q.At(1)
	if qx <= pts[0].At(0) || qy <= pts[len(pts)-1].At(1) {
		return false
	}
	for k := 1; k < len(pts); k++ {
		a, b := pts[k-1], pts[k]
		if a.At(0) <= qx && qx <= b.At(0) {
			cross := (b.At(0)-a.At(0))*(qy-a.At(1)) - (b.At(1)-a.At(1))*(qx-a.At(0))
			return cross > 0
		}
	}

	return true
}
