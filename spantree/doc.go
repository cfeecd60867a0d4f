// Package spantree turns a biobjective core.Graph into an index-level
// spanning tree instance and provides the shared vocabulary of the solvers:
// Tree (an edge set with its cost), Coloring (Mandatory / Forbidden /
// Available edge states with scoped mutation) and constrained optima.
//
// Vertices are indexed in core.Graph.Vertices() order, edges in creation
// order with self-loops dropped. All results are deterministic for a fixed
// graph.
//
// Enumerate is an exhaustive oracle over all (n-1)-edge subsets and is meant
// for tests and small instances only.
package spantree
