// Package bmst computes the complete Pareto front of the biobjective minimum
// spanning tree problem on undirected multigraphs.
//
// What is bmst?
//
//	Every edge carries two costs (say build cost and risk). No single spanning
//	tree is best on both, so the library returns every efficient cost pair
//	together with one representative tree:
//		• First phase: extreme supported trees by dichotomic weighted-sum search
//		• Second phase: the remaining efficient trees, by branch-and-bound
//		  (default) or by ranked spanning-tree enumeration (Gabow)
//
// Under the hood, everything is organized under small subpackages:
//
//	core/         thread-safe undirected multigraph with vector edge weights
//	weight/       cost vectors, dominance and weighted-sum scalarization
//	pareto/       sorted nondominated sets (fronts) with neighbor queries
//	unionfind/    disjoint-set forest used by Kruskal, bans and contractions
//	prim_kruskal/ scalar MST with forced / banned edge constraints
//	spantree/     dense instance view, tree values, partial colorings
//	gabow/        spanning trees in non-decreasing weighted-sum order
//	bmst/         FirstPhase, SecondPhase, Solve and Solutions
//	builder/      deterministic graph fixtures with vector weight generators
//
// Quick ASCII example:
//
//	    a──(1,4)──b
//	     \       /
//	   (2,2)  (4,1)
//	       \   /
//	         c
//
//	has extreme trees (3,6) and (6,3). The tree {a-b, b-c} costs (5,5): neither
//	extreme dominates it, but it lies above the segment joining them, so only
//	the second phase finds it. The full front is {(3,6) (5,5) (6,3)}.
//
// See examples/fiber_backbone for a complete program.
//
//	go get github.com/katalvlaran/bmst
package bmst
