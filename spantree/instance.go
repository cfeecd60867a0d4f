package spantree

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/prim_kruskal"
	"github.com/katalvlaran/bmst/unionfind"
	"github.com/katalvlaran/bmst/weight"
)

// Objectives is the weight dimension the solvers support.
const Objectives = 2

// Sentinel errors.
var (
	// ErrEmptyGraph indicates a nil graph or a graph without vertices.
	ErrEmptyGraph = errors.New("spantree: graph has no vertices")

	// ErrDimension indicates an annotated weight that is not two-dimensional.
	ErrDimension = errors.New("spantree: edge weight must have 2 objectives")

	// ErrBadWeight indicates a NaN or infinite weight coordinate.
	ErrBadWeight = errors.New("spantree: edge weight is not finite")

	// ErrDisconnected indicates that the graph has no spanning tree.
	ErrDisconnected = errors.New("spantree: graph is disconnected")

	// ErrInfeasible indicates that no spanning tree satisfies a coloring.
	ErrInfeasible = errors.New("spantree: no spanning tree satisfies the coloring")

	// ErrNotSpanning indicates an edge set that is not a spanning tree.
	ErrNotSpanning = errors.New("spantree: edge set is not a spanning tree")
)

// Annotator maps an edge to its objective vector.
type Annotator func(e *core.Edge) weight.Vector

// EdgeWeight is the default Annotator: the weight stored on the edge.
func EdgeWeight(e *core.Edge) weight.Vector { return e.Weight }

// Key maps an edge index to the vector minimized by Optimum.
type Key func(edge int) weight.Vector

// Instance is an immutable, index-level view of a biobjective graph.
type Instance struct {
	g        *core.Graph
	vertices []string
	index    map[string]int
	edges    []*core.Edge
	ends     []prim_kruskal.Endpoints
	weights  []weight.Vector
}

// NewInstance validates g under annotate and builds the index-level instance.
//
// Errors:
//   - ErrEmptyGraph: g is nil or has no vertices.
//   - ErrDimension, ErrBadWeight: wrapped with the offending edge ID.
//   - ErrDisconnected: no spanning tree exists.
//
// Complexity: O(V log V + E log E).
func NewInstance(g *core.Graph, annotate Annotator) (*Instance, error) {
	if g == nil || g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if annotate == nil {
		annotate = EdgeWeight
	}

	inst := &Instance{g: g, vertices: g.Vertices()}
	inst.index = make(map[string]int, len(inst.vertices))
	for i, v := range inst.vertices {
		inst.index[v] = i
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		w := annotate(e)
		if w.Dim() != Objectives {
			return nil, errors.Wrapf(ErrDimension, "edge %s has %d", e.ID, w.Dim())
		}
		if !w.IsFinite() {
			return nil, errors.Wrapf(ErrBadWeight, "edge %s = %v", e.ID, w)
		}
		inst.edges = append(inst.edges, e)
		inst.ends = append(inst.ends, prim_kruskal.Endpoints{U: inst.index[e.From], V: inst.index[e.To]})
		inst.weights = append(inst.weights, w)
	}

	if !inst.Connected(nil) {
		return nil, ErrDisconnected
	}

	return inst, nil
}

// N returns the number of vertices.
func (inst *Instance) N() int { return len(inst.vertices) }

// M returns the number of (non-loop) edges.
func (inst *Instance) M() int { return len(inst.edges) }

// Graph returns the source graph.
func (inst *Instance) Graph() *core.Graph { return inst.g }

// Vertex returns the ID of vertex i.
func (inst *Instance) Vertex(i int) string { return inst.vertices[i] }

// VertexIndex returns the index of vertex id.
func (inst *Instance) VertexIndex(id string) (int, bool) {
	i, ok := inst.index[id]
	return i, ok
}

// Edge returns edge i of the source graph.
func (inst *Instance) Edge(i int) *core.Edge { return inst.edges[i] }

// Ends returns the endpoint indices of edge i.
func (inst *Instance) Ends(i int) (int, int) { return inst.ends[i].U, inst.ends[i].V }

// Weight returns the annotated weight of edge i.
func (inst *Instance) Weight(i int) weight.Vector { return inst.weights[i] }

// EdgeIndex returns the index of the edge with the given ID.
func (inst *Instance) EdgeIndex(id string) (int, bool) {
	i := sort.Search(len(inst.edges), func(i int) bool { return !core.EdgeIDLess(inst.edges[i].ID, id) })
	if i < len(inst.edges) && inst.edges[i].ID == id {
		return i, true
	}

	return 0, false
}

// Scalarized returns the Key c·w(e) as a one-dimensional vector.
func (inst *Instance) Scalarized(c weight.Vector) Key {
	return func(i int) weight.Vector { return weight.New(inst.weights[i].Scalarize(c)) }
}

// ScalarWeight returns c·w(e) for each edge index; the gabow generator consumes it.
func (inst *Instance) ScalarWeight(c weight.Vector) func(int) float64 {
	return func(i int) float64 { return inst.weights[i].Scalarize(c) }
}

// LexKey returns the Key minimizing objective first, ties broken by the other.
func (inst *Instance) LexKey(first int) Key {
	return func(i int) weight.Vector {
		w := inst.weights[i]
		return weight.New(w.At(first), w.At(1-first))
	}
}

// Optimum returns a minimum spanning tree under key, restricted to coloring c
// (nil means unrestricted): Mandatory edges are forced, Forbidden edges banned.
// Ties keep edge creation order.
//
// Errors: ErrInfeasible when no spanning tree satisfies c.
//
// Complexity: O(E log E).
func (inst *Instance) Optimum(key Key, c *Coloring) (Tree, error) {
	keys := make([]weight.Vector, len(inst.edges))
	order := make([]int, len(inst.edges))
	for i := range inst.edges {
		keys[i] = key(i)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return keys[order[a]].Compare(keys[order[b]]) < 0 })

	var forced []int
	var banned func(int) bool
	if c != nil {
		forced = c.Edges(Mandatory)
		banned = func(i int) bool { return c.Color(i) == Forbidden }
	}

	chosen, err := prim_kruskal.Greedy(inst.N(), inst.ends, order, forced, banned)
	if err != nil {
		return Tree{}, ErrInfeasible
	}

	return inst.newTree(chosen), nil
}

// Lexicographic returns the lexicographic optimum with objective first
// minimized before the other, restricted to c.
func (inst *Instance) Lexicographic(first int, c *Coloring) (Tree, error) {
	return inst.Optimum(inst.LexKey(first), c)
}

// Connected reports whether the non-Forbidden edges of c span every vertex.
// A nil coloring considers all edges.
func (inst *Instance) Connected(c *Coloring) bool {
	dsu := unionfind.New(inst.N())
	for i, e := range inst.ends {
		if c != nil && c.Color(i) == Forbidden {
			continue
		}
		dsu.Union(e.U, e.V)
		if dsu.Sets() == 1 {
			return true
		}
	}

	return dsu.Sets() == 1
}

// IsSpanningTree reports whether edge indices form a spanning tree.
func (inst *Instance) IsSpanningTree(edges []int) bool {
	if len(edges) != inst.N()-1 {
		return false
	}
	dsu := unionfind.New(inst.N())
	for _, i := range edges {
		if i < 0 || i >= len(inst.ends) || !dsu.Union(inst.ends[i].U, inst.ends[i].V) {
			return false
		}
	}

	return true
}

// TreeOf builds a Tree from edge indices after validating it.
func (inst *Instance) TreeOf(edges []int) (Tree, error) {
	if !inst.IsSpanningTree(edges) {
		return Tree{}, ErrNotSpanning
	}

	return inst.newTree(edges), nil
}

// Materialize extracts the tree as a standalone core.Graph over all vertices.
func (inst *Instance) Materialize(t Tree) (*core.Graph, error) {
	return inst.g.Subgraph(inst.vertices, t.EdgeIDs())
}
