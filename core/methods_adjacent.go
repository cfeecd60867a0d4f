// File: methods_adjacent.go
// Role: Incidence queries (Neighbors, NeighborIDs, AdjacencyList) and the
//       private helpers that maintain the adjacency index.
// Determinism:
//   - Neighbors() is sorted by edge creation order.
//   - NeighborIDs() and AdjacencyList() values are sorted lexicographically.
// Concurrency:
//   - Queries take muVert then muEdgeAdj read locks.
//   - Helpers require the caller to hold muEdgeAdj.

package core

import "sort"

// Neighbors returns the edges incident to vertex id, in creation order.
// A self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0)
	var bucket map[string]struct{}
	var eid string
	for _, bucket = range g.adjacencyList[id] {
		for eid = range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id, sorted ascending.
// A vertex with a self-loop lists itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacencyList[id]))
	var to string
	var bucket map[string]struct{}
	for to, bucket = range g.adjacencyList[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbor IDs.
// Every vertex is present, isolated vertices map to an empty slice.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	var id, to string
	var bucket map[string]struct{}
	for id = range g.vertices {
		nbrs := make([]string, 0, len(g.adjacencyList[id]))
		for to, bucket = range g.adjacencyList[id] {
			if len(bucket) > 0 {
				nbrs = append(nbrs, to)
			}
		}
		sort.Strings(nbrs)
		out[id] = nbrs
	}

	return out
}

// addAdjacency indexes e under both endpoints.
func addAdjacency(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// ensureAdjacency makes sure adjacencyList[u][v] exists.
func ensureAdjacency(g *Graph, u, v string) {
	if g.adjacencyList[u] == nil {
		g.adjacencyList[u] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[u][v] == nil {
		g.adjacencyList[u][v] = make(map[string]struct{})
	}
}

// removeAdjacency drops e from both index directions.
func removeAdjacency(g *Graph, e *Edge) {
	if inner, ok := g.adjacencyList[e.From][e.To]; ok {
		delete(inner, e.ID)
	}
	if inner, ok := g.adjacencyList[e.To][e.From]; ok {
		delete(inner, e.ID)
	}
}

// cleanupAdjacency prunes empty neighbor buckets. Top-level vertex buckets
// are kept so isolated vertices stay indexed.
func cleanupAdjacency(g *Graph) {
	var u, v string
	var nbrs map[string]map[string]struct{}
	for u, nbrs = range g.adjacencyList {
		for v = range nbrs {
			if len(g.adjacencyList[u][v]) == 0 {
				delete(g.adjacencyList[u], v)
			}
		}
	}
}
