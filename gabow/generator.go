package gabow

import (
	"container/heap"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bmst/prim_kruskal"
	"github.com/katalvlaran/bmst/spantree"
	"github.com/katalvlaran/bmst/unionfind"
)

var (
	// ErrExhausted is returned by Generate once every spanning tree has been produced.
	ErrExhausted = errors.New("gabow: no more spanning trees")

	// ErrNilInstance indicates a nil instance or weight function.
	ErrNilInstance = errors.New("gabow: nil instance or weight function")
)

// link is a parent pointer: the parent vertex and the tree edge reaching it.
// The root holds {-1, -1}.
type link struct {
	vertex int
	edge   int
}

// rootedTree is an arena entry. It is never mutated after creation.
type rootedTree struct {
	tree   spantree.Tree
	parent []link
	depth  []int
	weight float64
}

// edgeList is a persistent singly linked list of edge indices.
type edgeList struct {
	edge int
	next *edgeList
}

func (l *edgeList) push(e int) *edgeList { return &edgeList{edge: e, next: l} }

// Generator enumerates spanning trees in non-decreasing scalar weight.
// It is not safe for concurrent use.
type Generator struct {
	inst  *spantree.Instance
	w     []float64
	order []int // edges by (w, index)
	ends  []prim_kruskal.Endpoints
	arena []*rootedTree
	queue partitionQueue
	seq   uint64
	first bool // the minimum tree has not been returned yet
	count int
}

// New builds a generator over inst weighted by scalar(edge index).
// The minimum spanning tree is computed eagerly and returned by the first
// Generate call.
func New(inst *spantree.Instance, scalar func(edge int) float64) (*Generator, error) {
	if inst == nil || scalar == nil {
		return nil, ErrNilInstance
	}
	m := inst.M()
	g := &Generator{
		inst:  inst,
		w:     make([]float64, m),
		order: make([]int, m),
		ends:  make([]prim_kruskal.Endpoints, m),
	}
	for i := 0; i < m; i++ {
		g.w[i] = scalar(i)
		g.order[i] = i
		u, v := inst.Ends(i)
		g.ends[i] = prim_kruskal.Endpoints{U: u, V: v}
	}
	sort.SliceStable(g.order, func(a, b int) bool { return g.w[g.order[a]] < g.w[g.order[b]] })

	chosen, err := prim_kruskal.Greedy(inst.N(), g.ends, g.order, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "gabow: minimum spanning tree")
	}
	t, err := inst.TreeOf(chosen)
	if err != nil {
		return nil, errors.Wrap(err, "gabow: minimum spanning tree")
	}

	root := g.store(t, g.bfsParents(t))
	g.first = true
	g.pushPartition(root, nil, nil)

	return g, nil
}

// Generate returns the next spanning tree, or ErrExhausted.
func (g *Generator) Generate() (spantree.Tree, error) {
	if g.first {
		g.first = false
		g.count++
		return g.arena[0].tree, nil
	}
	if g.queue.Len() == 0 {
		return spantree.Tree{}, ErrExhausted
	}

	p := heap.Pop(&g.queue).(*partition)
	base := g.arena[p.tree]
	next := g.store(g.exchangeTree(base, p.e, p.f))

	g.pushPartition(p.tree, p.in.push(p.e), p.out)
	g.pushPartition(next, p.in, p.out.push(p.e))
	g.count++

	return g.arena[next].tree, nil
}

// Weight returns the scalar weight of t under the generator's weighting.
func (g *Generator) Weight(t spantree.Tree) float64 {
	var s float64
	for _, i := range t.Edges() {
		s += g.w[i]
	}

	return s
}

// Count returns how many trees Generate has returned so far.
func (g *Generator) Count() int { return g.count }

// Pending returns the number of partitions waiting in the queue.
func (g *Generator) Pending() int { return g.queue.Len() }

// store appends a tree to the arena and returns its index.
func (g *Generator) store(t spantree.Tree, parent []link) int {
	g.arena = append(g.arena, &rootedTree{
		tree:   t,
		parent: parent,
		depth:  depths(parent),
		weight: g.Weight(t),
	})

	return len(g.arena) - 1
}

// pushPartition computes the best exchange of arena tree ti under in/out
// and queues the partition when one exists.
func (g *Generator) pushPartition(ti int, in, out *edgeList) {
	e, f, r, ok := g.bestExchange(g.arena[ti], in, out)
	if !ok {
		return
	}
	g.seq++
	heap.Push(&g.queue, &partition{
		tree: ti,
		in:   in,
		out:  out,
		e:    e,
		f:    f,
		key:  g.arena[ti].weight + r,
		seq:  g.seq,
	})
}

// bestExchange returns the exchange (e, f) of rt with the smallest
// w(f) − w(e) such that e ∉ in and f ∉ out.
func (g *Generator) bestExchange(rt *rootedTree, in, out *edgeList) (e, f int, r float64, ok bool) {
	n := g.inst.N()
	banned := make([]bool, len(g.w))
	for l := out; l != nil; l = l.next {
		banned[l.edge] = true
	}

	dsu := unionfind.New(n)
	for l := in; l != nil; l = l.next {
		c := g.childEnd(rt, l.edge)
		dsu.Link(c, rt.parent[c].vertex)
	}

	for _, j := range g.order {
		if banned[j] || rt.tree.Has(j) {
			continue
		}
		a, b := dsu.Find(g.ends[j].U), dsu.Find(g.ends[j].V)
		for a != b {
			if rt.depth[a] < rt.depth[b] {
				a, b = b, a
			}
			te := rt.parent[a].edge
			if d := g.w[j] - g.w[te]; !ok || d < r {
				e, f, r, ok = te, j, d, true
			}
			dsu.Link(a, rt.parent[a].vertex)
			a = dsu.Find(a)
		}
	}

	return e, f, r, ok
}

// childEnd returns the endpoint of tree edge te whose parent link is te.
func (g *Generator) childEnd(rt *rootedTree, te int) int {
	u, v := g.ends[te].U, g.ends[te].V
	if rt.parent[u].edge == te {
		return u
	}

	return v
}

// exchangeTree materializes rt − e + f. The subtree hanging below e is
// re-rooted at the endpoint of f it contains, reversing the parent pointers
// on the path between that endpoint and e.
func (g *Generator) exchangeTree(rt *rootedTree, e, f int) (spantree.Tree, []link) {
	cut := g.childEnd(rt, e)
	x, y := g.ends[f].U, g.ends[f].V
	if g.below(rt, y, cut) {
		x, y = y, x
	}
	// x lies in the subtree of cut, y outside it.
	parent := make([]link, len(rt.parent))
	copy(parent, rt.parent)

	prev, prevEdge, cur := y, f, x
	for {
		old := rt.parent[cur]
		parent[cur] = link{vertex: prev, edge: prevEdge}
		if cur == cut {
			break
		}
		prev, prevEdge, cur = cur, old.edge, old.vertex
	}

	edges := make([]int, 0, rt.tree.Len())
	for _, i := range rt.tree.Edges() {
		if i != e {
			edges = append(edges, i)
		}
	}
	edges = append(edges, f)
	t, err := g.inst.TreeOf(edges)
	if err != nil {
		// An exchange of a spanning tree is a spanning tree.
		panic(errors.Wrap(err, "gabow: exchange broke the tree"))
	}

	return t, parent
}

// below reports whether v lies in the subtree rooted at top.
func (g *Generator) below(rt *rootedTree, v, top int) bool {
	for v != -1 && rt.depth[v] >= rt.depth[top] {
		if v == top {
			return true
		}
		v = rt.parent[v].vertex
	}

	return false
}

// bfsParents roots t at vertex 0.
func (g *Generator) bfsParents(t spantree.Tree) []link {
	n := g.inst.N()
	adj := make([][]link, n)
	for _, i := range t.Edges() {
		u, v := g.ends[i].U, g.ends[i].V
		adj[u] = append(adj[u], link{vertex: v, edge: i})
		adj[v] = append(adj[v], link{vertex: u, edge: i})
	}

	parent := make([]link, n)
	seen := make([]bool, n)
	for i := range parent {
		parent[i] = link{vertex: -1, edge: -1}
	}
	seen[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, nb := range adj[x] {
			if !seen[nb.vertex] {
				seen[nb.vertex] = true
				parent[nb.vertex] = link{vertex: x, edge: nb.edge}
				queue = append(queue, nb.vertex)
			}
		}
	}

	return parent
}

// depths computes vertex depths from parent pointers without recursion.
func depths(parent []link) []int {
	depth := make([]int, len(parent))
	for i := range depth {
		depth[i] = -1
	}
	stack := make([]int, 0, len(parent))
	for x := range parent {
		v := x
		for depth[v] < 0 && parent[v].vertex != -1 {
			stack = append(stack, v)
			v = parent[v].vertex
		}
		if depth[v] < 0 {
			depth[v] = 0
		}
		d := depth[v]
		for len(stack) > 0 {
			y := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			d++
			depth[y] = d
		}
	}

	return depth
}
