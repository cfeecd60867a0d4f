// File: view.go
// Role: Non-mutating graph views: induced subgraphs and explicit
//       vertex/edge extraction (used to materialize spanning trees as graphs).
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph containing the vertices v with keep[v]
// and every edge whose endpoints are both kept. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e, ne *Edge
	for eid, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		out.edges[eid] = ne
		addAdjacency(out, ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// Subgraph returns a new Graph with exactly the given vertices and edges.
// Endpoints of the listed edges are added even when absent from vertexIDs,
// so Subgraph(nil, treeEdgeIDs) yields the tree as a graph.
//
// Errors:
//   - ErrVertexNotFound if a listed vertex is missing.
//   - ErrEdgeNotFound if a listed edge is missing.
//
// Complexity: O(|vertexIDs| + |edgeIDs|).
func (g *Graph) Subgraph(vertexIDs, edgeIDs []string) (*Graph, error) {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	addV := func(id string) error {
		v, ok := g.vertices[id]
		if !ok {
			return ErrVertexNotFound
		}
		if _, dup := out.vertices[id]; !dup {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}

		return nil
	}

	var id string
	for _, id = range vertexIDs {
		if err := addV(id); err != nil {
			return nil, err
		}
	}
	var e, ne *Edge
	var ok bool
	for _, id = range edgeIDs {
		if e, ok = g.edges[id]; !ok {
			return nil, ErrEdgeNotFound
		}
		if _, ok = out.edges[id]; ok {
			continue
		}
		if err := addV(e.From); err != nil {
			return nil, err
		}
		if err := addV(e.To); err != nil {
			return nil, err
		}
		ne = &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		out.edges[id] = ne
		addAdjacency(out, ne)
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out, nil
}
