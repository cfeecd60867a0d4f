// Package unionfind implements a disjoint-set forest over dense integer
// indices 0..n-1, with path compression and union by rank.
//
// Besides the symmetric Union it offers Link, a directed merge that keeps the
// root of the target class. Gabow's ancestor walk relies on Link: the root of
// every class is the topmost vertex of a contracted tree path, so Find(x)
// returns the first eligible ancestor of x.
package unionfind

// DSU is a disjoint-set forest. The zero value is unusable; call New.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New returns n singleton classes.
// Complexity: O(n).
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint classes.
func (d *DSU) Sets() int { return d.sets }

// Find returns the representative of x, compressing the walked path.
// Iterative, so deep chains never grow the call stack.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the classes of a and b by rank.
// It returns false when a and b were already connected.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Link merges the class of child into the class of parent so that the
// representative of parent stays the representative of the merged class.
// Ranks are ignored; path compression alone keeps Find amortized O(log n).
// It returns false when both were already connected.
func (d *DSU) Link(child, parent int) bool {
	rc, rp := d.Find(child), d.Find(parent)
	if rc == rp {
		return false
	}
	d.parent[rc] = rp
	d.sets--

	return true
}

// Connected reports whether a and b belong to the same class.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
