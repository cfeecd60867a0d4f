// Package bmst computes the complete Pareto frontier of spanning trees of a
// graph whose edges carry two costs (the biobjective minimum spanning tree
// problem).
//
// The computation runs in two phases.
//
// FirstPhase finds the extreme supported trees: the vertices of the convex
// hull of the cost set. It starts from the two lexicographic optima and
// bisects every hull gap with a weighted-sum MST whose weights are
// perpendicular to the gap.
//
// SecondPhase fills the triangles between adjacent extreme points with the
// non-supported efficient trees, using one of two strategies:
//
//   - KBest ranks trees by the gap's weighted sum with the gabow generator
//     and stops once the rank passes the best local nadir point.
//   - BranchAndBound fixes edges Mandatory or Forbidden one at a time,
//     bounds every branch by the extreme front of its restricted problem and
//     bans edges that close a cycle of edges no worse than themselves.
//
// Solve runs both phases. Results are pareto.Front values holding one
// spantree.Tree per efficient cost vector; ties between trees with equal
// costs follow the configured pareto.TiePolicy.
//
// Example:
//
//	front, err := bmst.Solve(g, bmst.WithStrategy(bmst.KBest))
//	if err != nil {
//	    return err
//	}
//	for cost, tree := range front.All() {
//	    fmt.Println(cost, tree.Len())
//	}
//
// Every operation is synchronous and single-threaded; the graph is read once
// into an immutable spantree.Instance.
package bmst
