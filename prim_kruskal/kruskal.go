// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/weight"
)

// Kruskal computes the Minimum Spanning Tree of an undirected graph under key.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if |V| == 0, or |V| > 1 and the graph is not connected.
//
// Steps:
//  1. Retrieve sorted vertex IDs and index them; handle |V| <= 1.
//  2. Collect all edges in creation order, evaluate key once per edge.
//  3. Stable sort by key (lexicographic), so ties keep creation order.
//  4. Greedy selection with union-find.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph, key KeyFunc) ([]core.Edge, weight.Vector, error) {
	if graph == nil {
		return nil, weight.Vector{}, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, weight.Vector{}, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, weight.Vector{}, nil
	}
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	edges := graph.Edges()
	ends := make([]Endpoints, len(edges))
	keys := make([]weight.Vector, len(edges))
	order := make([]int, len(edges))
	for i, e := range edges {
		ends[i] = Endpoints{U: index[e.From], V: index[e.To]}
		keys[i] = key(e)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]].Compare(keys[order[b]]) < 0
	})

	chosen, err := Greedy(len(vertices), ends, order, nil, nil)
	if err != nil {
		return nil, weight.Vector{}, err
	}

	mst := make([]core.Edge, 0, len(chosen))
	picked := make([]weight.Vector, 0, len(chosen))
	for _, i := range chosen {
		mst = append(mst, *edges[i])
		picked = append(picked, keys[i])
	}

	return mst, sumKeys(picked), nil
}
