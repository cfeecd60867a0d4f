package spantree

// Color is the branch-and-bound state of an edge.
type Color uint8

const (
	// Available edges are still undecided.
	Available Color = iota
	// Mandatory edges must belong to every tree of the branch.
	Mandatory
	// Forbidden edges must not belong to any tree of the branch.
	Forbidden
)

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case Available:
		return "available"
	case Mandatory:
		return "mandatory"
	case Forbidden:
		return "forbidden"
	default:
		return "invalid"
	}
}

// Coloring assigns exactly one Color to every edge index.
//
// Mutation goes through Set, which returns the matching restore function.
// Callers defer it, so the coloring unwinds in LIFO order on every exit path.
type Coloring struct {
	colors []Color
	count  [3]int
}

// NewColoring returns a coloring of m edges, all Available.
func NewColoring(m int) *Coloring {
	c := &Coloring{colors: make([]Color, m)}
	c.count[Available] = m

	return c
}

// Len returns the number of edges.
func (c *Coloring) Len() int { return len(c.colors) }

// Color returns the color of edge i.
func (c *Coloring) Color(i int) Color { return c.colors[i] }

// Count returns how many edges carry color col.
func (c *Coloring) Count(col Color) int { return c.count[col] }

// Set colors edge i with col and returns a function restoring the previous
// color. Calling restore more than once has no further effect.
//
//	defer c.Set(e, Mandatory)()
func (c *Coloring) Set(i int, col Color) (restore func()) {
	prev := c.colors[i]
	c.paint(i, col)
	done := false

	return func() {
		if done {
			return
		}
		done = true
		c.paint(i, prev)
	}
}

func (c *Coloring) paint(i int, col Color) {
	c.count[c.colors[i]]--
	c.colors[i] = col
	c.count[col]++
}

// Edges returns the indices colored col, ascending.
func (c *Coloring) Edges(col Color) []int {
	out := make([]int, 0, c.count[col])
	for i, x := range c.colors {
		if x == col {
			out = append(out, i)
		}
	}

	return out
}

// Consistent reports whether tree t agrees with the coloring: it holds every
// Mandatory edge and no Forbidden edge.
func (c *Coloring) Consistent(t Tree) bool {
	for i, x := range c.colors {
		switch {
		case x == Mandatory && !t.Has(i):
			return false
		case x == Forbidden && t.Has(i):
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (c *Coloring) Clone() *Coloring {
	out := &Coloring{colors: make([]Color, len(c.colors)), count: c.count}
	copy(out.colors, c.colors)

	return out
}
