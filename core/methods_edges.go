// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/EdgeBetween/
//       Edges/EdgeCount/FilterEdges, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (natural order of "e<N>" IDs).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/bmst/weight"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to with cost vector w
// and returns its ID.
//
// Steps:
//  1. Validate IDs, weight dimension, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate the edge ID, store the edge and index it both ways.
//
// Errors:
//   - ErrEmptyVertexID if an endpoint is empty.
//   - ErrDimension if w.Dim() != Objectives().
//   - ErrLoopNotAllowed if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if {from,to} already has an edge without WithMultiEdges.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w weight.Vector) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if w.Dim() != g.objectives {
		return "", ErrDimension
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: w}
	g.edges[eid] = e
	addAdjacency(g, e)

	return eid, nil
}

// RemoveEdge deletes one edge by ID.
// Complexity: O(1) removal + O(V+E) cleanup in degenerate cases.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether at least one edge joins u and v (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[u][v]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
//
// Contract:
//   - The returned *Edge must be treated as read-only by callers.
//
// Complexity: O(1) average.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns every edge joining u and v in creation order.
// The result is empty (not an error) when u and v are not adjacent;
// ErrVertexNotFound is returned when either vertex is missing.
//
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) EdgeBetween(u, v string) ([]*Edge, error) {
	if u == "" || v == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[u][v]
	out := make([]*Edge, 0, len(bucket))
	var eid string
	for eid = range bucket {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E) for sorting.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate.
//
// Contract:
//   - pred is pure; must not mutate the graph.
//
// Complexity: O(E) scan + O(V+E) cleanup in worst case.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	cleanupAdjacency(g)
}

// EdgeIDLess orders edge IDs naturally: "e2" < "e10". IDs of equal length
// compare lexicographically.
func EdgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// sortEdges sorts edges in place by EdgeIDLess.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return EdgeIDLess(es[i].ID, es[j].ID) })
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
// Safe for concurrent callers; atomic.AddUint64 fetches the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
