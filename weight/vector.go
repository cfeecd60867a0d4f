package weight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Relation is the outcome of a dominance comparison between two vectors.
type Relation int

const (
	// Incomparable means neither vector is weakly better in every coordinate.
	Incomparable Relation = iota
	// Smaller means the receiver dominates the argument.
	Smaller
	// Greater means the argument dominates the receiver.
	Greater
	// Equal means both vectors are identical.
	Equal
)

// String renders the relation name.
func (r Relation) String() string {
	switch r {
	case Smaller:
		return "Smaller"
	case Greater:
		return "Greater"
	case Equal:
		return "Equal"
	default:
		return "Incomparable"
	}
}

// Vector is an immutable fixed-length numeric vector.
type Vector struct {
	xs []float64
}

// New returns a vector holding a copy of xs.
func New(xs ...float64) Vector {
	cp := make([]float64, len(xs))
	copy(cp, xs)

	return Vector{xs: cp}
}

// Zero returns the zero vector of dimension d.
func Zero(d int) Vector {
	return Vector{xs: make([]float64, d)}
}

// Dim returns the number of coordinates.
func (v Vector) Dim() int { return len(v.xs) }

// At returns coordinate i.
func (v Vector) At(i int) float64 { return v.xs[i] }

// Values returns a copy of the coordinates.
func (v Vector) Values() []float64 {
	cp := make([]float64, len(v.xs))
	copy(cp, v.xs)

	return cp
}

// IsFinite reports whether every coordinate is a finite number.
func (v Vector) IsFinite() bool {
	for _, x := range v.xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Add returns v + o.
// Complexity: O(d).
func (v Vector) Add(o Vector) Vector {
	mustSameDim(v, o)

	return Vector{xs: floats.AddTo(make([]float64, len(v.xs)), v.xs, o.xs)}
}

// Sub returns v − o.
// Complexity: O(d).
func (v Vector) Sub(o Vector) Vector {
	mustSameDim(v, o)

	return Vector{xs: floats.SubTo(make([]float64, len(v.xs)), v.xs, o.xs)}
}

// Scale returns k·v (scalar product).
// Complexity: O(d).
func (v Vector) Scale(k float64) Vector {
	return Vector{xs: floats.ScaleTo(make([]float64, len(v.xs)), k, v.xs)}
}

// Scalarize returns the dot product of v with the coefficient vector coeffs.
// This is the linear scalarization used to reduce the bi-objective problem to
// a single objective.
// Complexity: O(d).
func (v Vector) Scalarize(coeffs Vector) float64 {
	mustSameDim(v, coeffs)

	return floats.Dot(v.xs, coeffs.xs)
}

// Dominates compares v against o under minimization of every coordinate.
// Vectors of different dimension are Incomparable.
// Complexity: O(d).
func (v Vector) Dominates(o Vector) Relation {
	if len(v.xs) != len(o.xs) {
		return Incomparable
	}
	var better, worse bool
	for i, x := range v.xs {
		switch {
		case x < o.xs[i]:
			better = true
		case x > o.xs[i]:
			worse = true
		}
		if better && worse {
			return Incomparable
		}
	}
	switch {
	case better:
		return Smaller
	case worse:
		return Greater
	default:
		return Equal
	}
}

// WeaklyDominates reports whether v ≤ o in every coordinate (equality allowed).
func (v Vector) WeaklyDominates(o Vector) bool {
	r := v.Dominates(o)

	return r == Smaller || r == Equal
}

// Compare orders v and o lexicographically, returning -1, 0 or +1.
// A shorter vector that is a prefix of the longer one sorts first.
func (v Vector) Compare(o Vector) int {
	n := len(v.xs)
	if len(o.xs) < n {
		n = len(o.xs)
	}
	for i := 0; i < n; i++ {
		switch {
		case v.xs[i] < o.xs[i]:
			return -1
		case v.xs[i] > o.xs[i]:
			return 1
		}
	}
	switch {
	case len(v.xs) < len(o.xs):
		return -1
	case len(v.xs) > len(o.xs):
		return 1
	}

	return 0
}

// Equal reports exact coordinate-wise equality.
func (v Vector) Equal(o Vector) bool {
	return len(v.xs) == len(o.xs) && v.Compare(o) == 0
}

// String renders the vector as "(x, y, ...)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

func mustSameDim(a, b Vector) {
	if len(a.xs) != len(b.xs) {
		panic(fmt.Sprintf("weight: dimension mismatch %d != %d", len(a.xs), len(b.xs)))
	}
}
