// File: types.go
// Role: Vertex, Edge and Graph declarations, graph options, sentinel errors
//       and the NewGraph constructor.
// Determinism:
//   - Construction is pure; no randomness, no time.
// Concurrency:
//   - muVert guards the vertex catalog.
//   - muEdgeAdj guards the edge catalog and the adjacency index.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bmst/weight"
)

// DefaultObjectives is the objective dimension of a Graph built without
// WithObjectives. Biobjective problems are the common case.
const DefaultObjectives = 2

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDimension indicates a weight vector whose length differs from the
	// objective dimension of the graph.
	ErrDimension = errors.New("core: weight dimension mismatch")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is an undirected connection between two vertices carrying a vector
// of objective costs.
//
// From and To are stored in insertion order; the edge is traversable both ways.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint.
	From string

	// To is the second endpoint.
	To string

	// Weight holds one cost per objective. Its length equals Graph.Objectives().
	Weight weight.Vector
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint, From is returned.
func (e *Edge) Other(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithObjectives sets the objective dimension d (length of every edge weight).
// Values below 1 are ignored.
func WithObjectives(d int) GraphOption {
	return func(g *Graph) {
		if d > 0 {
			g.objectives = d
		}
	}
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected multi-objective graph.
//
// Every edge weight is a weight.Vector of the same dimension. Parallel edges
// and self-loops are rejected unless enabled by options.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration
	objectives int  // weight dimension
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[u][v][edgeID] = struct{}{}, mirrored for u != v.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is biobjective, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		objectives:    DefaultObjectives,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
