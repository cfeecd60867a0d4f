// Package core provides a thread-safe in-memory undirected Graph whose edges
// carry vectors of objective costs.
//
// The Graph G = (V,E) supports:
//
//   - Vector weights of a fixed dimension (WithObjectives, default 2)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops); loops never belong to a spanning tree
//   - Constant-time edge operations via nested maps:
//     adjacencyList[u][v][edgeID] = struct{}{} (mirrored for u != v)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices() and NeighborIDs() are sorted
// lexicographically; Edges(), Neighbors() and EdgeBetween() follow edge
// creation order. Downstream algorithms index vertices and edges by these
// orders, so results are reproducible run to run.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w weight.Vector) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(u, v string) bool          // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//	EdgeBetween(u, v string) ([]*Edge, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // loops appear once
//	NeighborIDs(id string) ([]string, error) // unique, sorted
//	Degree(id string) (int, error)           // loops count twice
//
//	// Cloning & views
//	Clone(), CloneEmpty(), Clear()
//	Subgraph(vertexIDs, edgeIDs []string) (*Graph, error)
//	InducedSubgraph(g, keep map[string]bool) *Graph
//
// Errors are sentinels compared with errors.Is: ErrEmptyVertexID,
// ErrVertexNotFound, ErrEdgeNotFound, ErrDimension, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
package core
