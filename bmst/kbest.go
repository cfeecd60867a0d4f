package bmst

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmst/gabow"
	"github.com/katalvlaran/bmst/weight"
)

// kBest completes the extreme front by ranking trees inside every triangle
// of adjacent extreme points.
//
// Complexity: O(K · E·α(V)) for K generated trees over all triangles.
func (s *solver) kBest(extreme *Front) (*Front, error) {
	out := s.newFront()
	out.Merge(extreme)

	pts := extreme.Entries()
	for k := 1; k < len(pts); k++ {
		if err := s.triangle(out, pts[k-1].Cost, pts[k].Cost); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// triangle generates trees in increasing c·w, c perpendicular to a–b, and
// accepts the efficient ones inside the rectangle spanned by a and b.
// Generation stops when c·w reaches the worst local nadir point: past it no
// tree can be efficient.
func (s *solver) triangle(out *Front, a, b weight.Vector) error {
	c := weight.New(a.At(1)-b.At(1), b.At(0)-a.At(0))
	gen, err := gabow.New(s.inst, s.inst.ScalarWeight(c))
	if err != nil {
		return errors.Wrap(err, "bmst: k-best generator")
	}

	local := s.newFront()
	if t, ok := out.Get(a); ok {
		local.Add(a, t)
	}
	if t, ok := out.Get(b); ok {
		local.Add(b, t)
	}
	threshold := weight.New(b.At(0), a.At(1)).Scalarize(c)

	s.log.Debug("k-best triangle",
		zap.Stringer("a", a),
		zap.Stringer("b", b),
		zap.Float64("threshold", threshold))

	accepted := 0
	for {
		t, err := gen.Generate()
		if errors.Is(err, gabow.ErrExhausted) {
			break
		}
		if err != nil {
			return err
		}

		ct := t.Cost()
		if ct.Scalarize(c) >= threshold {
			break
		}
		if ct.At(0) < a.At(0) || ct.At(0) > b.At(0) || ct.At(1) < b.At(1) || ct.At(1) > a.At(1) {
			continue
		}
		// weak dominance also rejects costs already in the triangle
		if local.IsDominated(ct) {
			continue
		}

		local.Add(ct, t)
		out.Add(ct, t)
		accepted++

		threshold = 0
		for i, q := range local.Corners() {
			if v := q.Scalarize(c); i == 0 || v > threshold {
				threshold = v
			}
		}
	}

	s.log.Debug("k-best triangle done",
		zap.Stringer("a", a),
		zap.Stringer("b", b),
		zap.Int("generated", gen.Count()),
		zap.Int("accepted", accepted))

	return nil
}
