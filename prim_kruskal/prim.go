// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min-heap keyed by KeyFunc.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/weight"
)

// Prim computes the Minimum Spanning Tree of an undirected graph under key
// by growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil.
//   - ErrEmptyRoot          : if root is empty.
//   - core.ErrVertexNotFound: if root does not exist.
//   - ErrDisconnected       : if |V| == 0 or the graph is not connected.
//
// Steps:
//  1. Validate graph and root; handle |V| <= 1.
//  2. Mark root visited, push its incident edges.
//  3. Pop the smallest key; skip edges into visited vertices; otherwise take
//     the edge, mark the far endpoint and push its incident edges.
//  4. Fewer than |V|-1 edges → ErrDisconnected.
//
// Ties on key are broken by push order, which follows edge creation order
// per vertex, so results are deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, key KeyFunc) ([]core.Edge, weight.Vector, error) {
	if graph == nil {
		return nil, weight.Vector{}, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, weight.Vector{}, ErrDisconnected
	}
	if root == "" {
		return nil, weight.Vector{}, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, weight.Vector{}, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, weight.Vector{}, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	picked := make([]weight.Vector, 0, n-1)
	pq := &edgePQ{}
	heap.Init(pq)
	var seq int

	push := func(from string) error {
		nbrs, err := graph.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if e.From == e.To || visited[e.Other(from)] {
				continue
			}
			heap.Push(pq, &pqItem{edge: e, to: e.Other(from), key: key(e), seq: seq})
			seq++
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, weight.Vector{}, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(*pqItem)
		if visited[it.to] {
			continue
		}
		visited[it.to] = true
		mst = append(mst, *it.edge)
		picked = append(picked, it.key)
		if err := push(it.to); err != nil {
			return nil, weight.Vector{}, err
		}
	}

	if len(mst) < n-1 {
		return nil, weight.Vector{}, ErrDisconnected
	}

	return mst, sumKeys(picked), nil
}

// pqItem is a candidate edge leading to vertex to.
type pqItem struct {
	edge *core.Edge
	to   string
	key  weight.Vector
	seq  int
}

// edgePQ implements heap.Interface as a min-heap ordered by (key, seq).
type edgePQ []*pqItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if c := pq[i].key.Compare(pq[j].key); c != 0 {
		return c < 0
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
