// Package prim_kruskal computes Minimum Spanning Trees on an undirected,
// vector-weighted *core.Graph: Prim's algorithm, Kruskal's algorithm and an
// index-level Greedy selection used by the multi-objective solvers.
//
// What & Why
//
//   - An MST of a connected graph G = (V, E) is a subset T ⊆ E that spans V
//     and minimizes the summed key of its edges.
//
//   - Here every edge carries a weight.Vector of objective costs. The quantity
//     minimized is chosen by a KeyFunc:
//
//   - Objective(i): classic scalar MST on objective i.
//
//   - Scalarized(c): weighted sum c·w(e), the building block of supported
//     efficient tree enumeration.
//
//   - Lexicographic(i, j, ...): minimize objective i, break ties by j, and so on.
//     Keys are compared lexicographically, and the greedy exchange argument
//     holds for any totally ordered group, so Kruskal and Prim return the
//     lexicographic optimum directly.
//
// Algorithms Provided
//
//   - Kruskal(g, key) ([]core.Edge, weight.Vector, error)
//     Stable sort by key, then union-find. Time O(E log E + α(V)·E).
//
//   - Prim(g, root, key) ([]core.Edge, weight.Vector, error)
//     Min-heap expansion from root. Time O(E log E).
//
//   - Greedy(n, ends, order, forced, banned) ([]int, error)
//     Kruskal's selection over edge indices with forced and banned edges.
//     This is the constrained optimum oracle used by branch-and-bound.
//
//   - Compute(g, key, opts) dispatches on MSTOptions.Method.
//
// Error Conditions
//
//	- ErrInvalidGraph: graph is nil, or Compute received an unknown method.
//	- ErrEmptyRoot (Prim only): root == "".
//	- core.ErrVertexNotFound (Prim only): root is not a vertex.
//	- ErrDisconnected: |V| == 0, or no spanning tree exists with admissible edges.
//	- ErrForcedCycle (Greedy only): forced edges contain a cycle.
//
// Determinism
//
//   - Kruskal stable-sorts edges taken in creation order, so equal keys keep
//     insertion order.
//   - Prim breaks key ties by push order.
//   - Self-loops never enter a tree.
package prim_kruskal
