// Package weight provides the fixed-dimension cost vector used by every
// multi-objective algorithm in bmst, together with the Pareto dominance
// relation under minimization.
//
// A Vector is an immutable value: Add, Sub and Scale return fresh vectors and
// never alias their inputs. All vectors compared against each other are
// expected to share one dimension; arithmetic on mismatched dimensions is a
// programmer error and panics, while Dominates reports Incomparable.
//
// Dominance (minimization of every coordinate):
//
//	a.Dominates(b) == Smaller      a ≤ b in all coordinates, a < b in at least one
//	a.Dominates(b) == Greater      b ≤ a in all coordinates, b < a in at least one
//	a.Dominates(b) == Equal        a == b
//	a.Dominates(b) == Incomparable otherwise
//
// Compare orders vectors lexicographically; it is the total order used by
// pareto.Front and by the lexicographic spanning-tree optima.
package weight
