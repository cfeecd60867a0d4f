// Package pareto provides Front, an ordered container of values keyed by
// their weight.Vector cost.
//
// Entries are kept in lexicographic cost order. With dominance management
// enabled (the default) the container maintains the no-mutual-dominance
// invariant: Add rejects a cost dominated by an existing entry and evicts
// every entry the new cost dominates.
//
// Two values with identical cost share one slot. Which one is kept is an
// explicit TiePolicy: KeepFirst (default) rejects later arrivals, KeepLast
// replaces the stored value.
//
// Ordered neighbor access (First, Last, Floor, Ceiling, Lower, Higher) and
// Corners serve the bound computations of the biobjective spanning tree
// solvers. Corners assumes a two-dimensional cost.
//
// A Front is not safe for concurrent mutation.
package pareto
