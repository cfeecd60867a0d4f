package spantree

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/bmst/unionfind"
)

// Enumerate calls fn for every spanning tree of inst, in lexicographic order
// of edge index sets, until fn returns false.
//
// It walks all C(M, N-1) subsets and is exponential: use it on small
// instances only (tests, oracles).
func Enumerate(inst *Instance, fn func(Tree) bool) {
	k := inst.N() - 1
	if k == 0 {
		fn(inst.newTree(nil))
		return
	}
	if inst.M() < k {
		return
	}

	gen := combin.NewCombinationGenerator(inst.M(), k)
	comb := make([]int, k)
	for gen.Next() {
		comb = gen.Combination(comb)
		if !acyclic(inst, comb) {
			continue
		}
		if !fn(inst.newTree(comb)) {
			return
		}
	}
}

// Count returns the number of spanning trees of inst by enumeration.
func Count(inst *Instance) int {
	n := 0
	Enumerate(inst, func(Tree) bool {
		n++
		return true
	})

	return n
}

func acyclic(inst *Instance, edges []int) bool {
	dsu := unionfind.New(inst.N())
	for _, i := range edges {
		if !dsu.Union(inst.ends[i].U, inst.ends[i].V) {
			return false
		}
	}

	return true
}
