package spantree

import (
	"sort"
	"strconv"
	"strings"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/weight"
)

// Tree is a spanning tree of an Instance: a sorted set of edge indices and
// the componentwise sum of their weights. Trees are immutable values and
// share the edge table of the instance that built them.
type Tree struct {
	edges []int
	set   bits.Bits
	cost  weight.Vector
	src   []*core.Edge
}

// newTree builds a Tree from trusted indices.
func (inst *Instance) newTree(edges []int) Tree {
	sorted := make([]int, len(edges))
	copy(sorted, edges)
	sort.Ints(sorted)

	set := bits.New(len(inst.edges))
	cost := weight.Zero(Objectives)
	for _, i := range sorted {
		set.SetBit(i, 1)
		cost = cost.Add(inst.weights[i])
	}

	return Tree{edges: sorted, set: set, cost: cost, src: inst.edges}
}

// Cost returns the tree cost vector.
func (t Tree) Cost() weight.Vector { return t.cost }

// Len returns the number of edges.
func (t Tree) Len() int { return len(t.edges) }

// Edges returns a copy of the sorted edge indices.
func (t Tree) Edges() []int {
	out := make([]int, len(t.edges))
	copy(out, t.edges)

	return out
}

// Has reports whether edge i belongs to the tree.
func (t Tree) Has(i int) bool {
	return i >= 0 && i < t.set.Num && t.set.Bit(i) == 1
}

// Equal reports whether both trees hold the same edge set.
func (t Tree) Equal(o Tree) bool {
	if len(t.edges) != len(o.edges) {
		return false
	}
	for i, e := range t.edges {
		if o.edges[i] != e {
			return false
		}
	}

	return true
}

// Key returns a compact string identifying the edge set.
func (t Tree) Key() string {
	var sb strings.Builder
	for i, e := range t.edges {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// EdgeIDs returns the core edge IDs of the tree in index order.
func (t Tree) EdgeIDs() []string {
	out := make([]string, len(t.edges))
	for k, i := range t.edges {
		out[k] = t.src[i].ID
	}

	return out
}

// Pairs renders each edge as "u-v" with endpoints in lexicographic order,
// sorted. Handy for logs and assertions.
func (t Tree) Pairs() []string {
	out := make([]string, len(t.edges))
	for k, i := range t.edges {
		e := t.src[i]
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[k] = u + "-" + v
	}
	sort.Strings(out)

	return out
}
