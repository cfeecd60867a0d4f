// SPDX-License-Identifier: MIT
// Package: bmst/builder
//
// weight_fn.go: edge-weight distributions for vector-weighted graphs.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bmst/weight"
)

// DefaultEdgeWeight is every coordinate of the default edge weight.
const DefaultEdgeWeight float64 = 1

// VectorFn produces an edge weight of dimension dim from an optional RNG.
// It must be deterministic for a given RNG state.
type VectorFn func(rng *rand.Rand, dim int) weight.Vector

// DefaultVectorFn returns the all-DefaultEdgeWeight vector.
func DefaultVectorFn(_ *rand.Rand, dim int) weight.Vector {
	return fill(dim, func(int) float64 { return DefaultEdgeWeight })
}

// ConstantVectorFn always yields xs. Panics if xs is empty or has a negative
// coordinate. A graph whose dimension differs from len(xs) rejects the edge.
func ConstantVectorFn(xs ...float64) VectorFn {
	if len(xs) == 0 {
		panic("ConstantVectorFn: no coordinates")
	}
	for _, x := range xs {
		if x < 0 {
			panic(fmt.Sprintf("ConstantVectorFn: coordinates must be ≥ 0, got %g", x))
		}
	}
	w := weight.New(xs...)

	return func(_ *rand.Rand, _ int) weight.Vector { return w }
}

// UniformVectorFn samples every coordinate independently in [lo, hi).
// Panics unless 0 ≤ lo ≤ hi. With a nil RNG it yields DefaultVectorFn.
func UniformVectorFn(lo, hi float64) VectorFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformVectorFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand, dim int) weight.Vector {
		if rng == nil {
			return DefaultVectorFn(nil, dim)
		}

		return fill(dim, func(int) float64 { return lo + rng.Float64()*(hi-lo) })
	}
}

// IntVectorFn samples every coordinate independently among the integers
// lo..hi inclusive. Integer costs keep weighted sums exact, which makes
// fronts reproducible across strategies. Panics unless 0 ≤ lo ≤ hi.
// With a nil RNG it yields DefaultVectorFn.
func IntVectorFn(lo, hi int) VectorFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntVectorFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand, dim int) weight.Vector {
		if rng == nil {
			return DefaultVectorFn(nil, dim)
		}

		return fill(dim, func(int) float64 { return float64(lo + rng.Intn(hi-lo+1)) })
	}
}

// ConflictingVectorFn draws integer biobjective weights on the anti-diagonal
// x + y = hi, jittered by up to ±spread: improving one objective costs the
// other, which yields large Pareto fronts. Dimensions other than 2 fall back
// to IntVectorFn(0, hi). Panics unless 0 ≤ spread ≤ hi.
func ConflictingVectorFn(hi, spread int) VectorFn {
	if spread < 0 || hi < spread {
		panic(fmt.Sprintf("ConflictingVectorFn: require 0 ≤ spread ≤ hi, got hi=%d, spread=%d", hi, spread))
	}
	fallback := IntVectorFn(0, hi)

	return func(rng *rand.Rand, dim int) weight.Vector {
		if rng == nil || dim != 2 {
			return fallback(rng, dim)
		}
		x := rng.Intn(hi + 1)
		y := hi - x + rng.Intn(2*spread+1) - spread
		if y < 0 {
			y = 0
		}

		return weight.New(float64(x), float64(y))
	}
}

func fill(dim int, f func(i int) float64) weight.Vector {
	xs := make([]float64, dim)
	for i := range xs {
		xs[i] = f(i)
	}

	return weight.New(xs...)
}
