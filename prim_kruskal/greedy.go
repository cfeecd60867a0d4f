package prim_kruskal

import "github.com/katalvlaran/bmst/unionfind"

// Endpoints are the vertex indices of an edge in an index-level instance.
type Endpoints struct {
	U, V int
}

// Greedy runs Kruskal's selection over an index-level instance.
//
// n is the number of vertices, ends[i] the endpoints of edge i and order the
// candidate edges in non-decreasing key order. Forced edges are taken first
// and must be acyclic (ErrForcedCycle otherwise). Edges for which banned
// returns true are never taken; banned may be nil. Self-loops are skipped.
//
// The returned slice lists the chosen edge indices in selection order.
// ErrDisconnected is returned when fewer than n-1 edges can be chosen.
//
// Complexity: O(|order|·α(n)).
func Greedy(n int, ends []Endpoints, order, forced []int, banned func(int) bool) ([]int, error) {
	if n <= 1 {
		return []int{}, nil
	}
	dsu := unionfind.New(n)
	chosen := make([]int, 0, n-1)

	for _, i := range forced {
		if !dsu.Union(ends[i].U, ends[i].V) {
			return nil, ErrForcedCycle
		}
		chosen = append(chosen, i)
	}

	for _, i := range order {
		if len(chosen) == n-1 {
			break
		}
		if banned != nil && banned(i) {
			continue
		}
		if dsu.Union(ends[i].U, ends[i].V) {
			chosen = append(chosen, i)
		}
	}

	if len(chosen) < n-1 {
		return nil, ErrDisconnected
	}

	return chosen, nil
}
