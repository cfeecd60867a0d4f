// Package gabow ranks the spanning trees of a spantree.Instance by a scalar
// edge weight: each Generate call returns the next tree in non-decreasing
// total weight, until ErrExhausted.
//
// The generator follows Gabow's partition refinement. A partition holds a
// materialized tree T, the edges forced in (IN) and out (OUT) by ancestor
// splits, and the cheapest exchange (e, f) of T compatible with IN/OUT.
// Partitions wait in a min-heap keyed by w(T) + w(f) − w(e).
//
// Generate pops the best partition P, materializes T' = T − e + f by reversing
// parent pointers along the re-rooted path, and refines P into
//
//	(T,  IN ∪ {e}, OUT)      trees of P that keep e
//	(T', IN,       OUT ∪ {e}) trees of P that drop e
//
// so that no tree is produced twice. The cheapest exchange of a partition is
// found by sweeping non-tree edges in weight order and walking their tree
// paths with a union-find that contracts every tree edge once it is
// assigned its cheapest replacement (IN edges are contracted up front).
//
// Trees are stored once in an immutable arena; IN/OUT lists are persistent
// linked lists whose tails are shared between sibling partitions.
//
// Complexity: O(E·α(V) + V) per Generate, O(E log E) setup.
package gabow
