package pareto

import (
	"iter"
	"sort"

	"github.com/katalvlaran/bmst/weight"
)

// TiePolicy decides which value survives when two values share a cost.
type TiePolicy int

const (
	// KeepFirst keeps the value inserted first; later equal-cost Adds fail.
	KeepFirst TiePolicy = iota
	// KeepLast replaces the stored value with the newcomer.
	KeepLast
)

// String implements fmt.Stringer.
func (p TiePolicy) String() string {
	switch p {
	case KeepFirst:
		return "keep-first"
	case KeepLast:
		return "keep-last"
	default:
		return "unknown"
	}
}

// Entry is one cost/value pair of a Front.
type Entry[T any] struct {
	Cost  weight.Vector
	Value T
}

type config struct {
	dominance bool
	tie       TiePolicy
}

// Option configures a Front.
type Option func(*config)

// WithDominance toggles dominance management. When off, the Front is a plain
// ordered map from cost to value.
func WithDominance(on bool) Option {
	return func(c *config) { c.dominance = on }
}

// WithTiePolicy selects the equal-cost policy.
func WithTiePolicy(p TiePolicy) Option {
	return func(c *config) { c.tie = p }
}

// Front is a cost-ordered collection; see the package documentation.
type Front[T any] struct {
	cfg     config
	entries []Entry[T] // sorted by Cost.Compare
}

// New returns an empty Front with dominance management on and KeepFirst ties.
func New[T any](opts ...Option) *Front[T] {
	cfg := config{dominance: true, tie: KeepFirst}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Front[T]{cfg: cfg}
}

// Dominance reports whether dominance management is on.
func (f *Front[T]) Dominance() bool { return f.cfg.dominance }

// TiePolicy returns the configured equal-cost policy.
func (f *Front[T]) TiePolicy() TiePolicy { return f.cfg.tie }

// Len returns the number of entries.
func (f *Front[T]) Len() int { return len(f.entries) }

// search returns the first index whose cost is >= c.
func (f *Front[T]) search(c weight.Vector) int {
	return sort.Search(len(f.entries), func(i int) bool {
		return f.entries[i].Cost.Compare(c) >= 0
	})
}

// Add inserts v under cost c and reports whether the Front changed.
//
// With dominance management, Add fails when an entry dominates c, and
// otherwise evicts every entry that c dominates. An equal cost is resolved
// by the TiePolicy.
//
// Complexity: O(n) with dominance management, O(log n + n) shift otherwise.
func (f *Front[T]) Add(c weight.Vector, v T) bool {
	i := f.search(c)
	if i < len(f.entries) && f.entries[i].Cost.Equal(c) {
		if f.cfg.tie == KeepLast {
			f.entries[i].Value = v
			return true
		}

		return false
	}

	if f.cfg.dominance {
		for _, e := range f.entries {
			if e.Cost.Dominates(c) == weight.Smaller {
				return false
			}
		}
		kept := f.entries[:0]
		for _, e := range f.entries {
			if c.Dominates(e.Cost) != weight.Smaller {
				kept = append(kept, e)
			}
		}
		clear(f.entries[len(kept):])
		f.entries = kept
		i = f.search(c)
	}

	f.entries = append(f.entries, Entry[T]{})
	copy(f.entries[i+1:], f.entries[i:])
	f.entries[i] = Entry[T]{Cost: c, Value: v}

	return true
}

// Remove deletes the entry with cost c and reports whether it existed.
func (f *Front[T]) Remove(c weight.Vector) bool {
	i := f.search(c)
	if i == len(f.entries) || !f.entries[i].Cost.Equal(c) {
		return false
	}
	last := len(f.entries) - 1
	copy(f.entries[i:], f.entries[i+1:])
	clear(f.entries[last:])
	f.entries = f.entries[:last]

	return true
}

// Get returns the value stored under cost c.
func (f *Front[T]) Get(c weight.Vector) (T, bool) {
	i := f.search(c)
	if i < len(f.entries) && f.entries[i].Cost.Equal(c) {
		return f.entries[i].Value, true
	}
	var zero T

	return zero, false
}

// Contains reports whether an entry with cost c exists.
func (f *Front[T]) Contains(c weight.Vector) bool {
	_, ok := f.Get(c)
	return ok
}

// IsDominated reports whether some entry weakly dominates c
// (it is no worse in every objective).
func (f *Front[T]) IsDominated(c weight.Vector) bool {
	for _, e := range f.entries {
		if e.Cost.WeaklyDominates(c) {
			return true
		}
	}

	return false
}

// All iterates entries in cost order.
func (f *Front[T]) All() iter.Seq2[weight.Vector, T] {
	return func(yield func(weight.Vector, T) bool) {
		for _, e := range f.entries {
			if !yield(e.Cost, e.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in cost order.
func (f *Front[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(f.entries))
	copy(out, f.entries)

	return out
}

// Costs returns the costs in order.
func (f *Front[T]) Costs() []weight.Vector {
	out := make([]weight.Vector, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Cost
	}

	return out
}

// Values returns the values in cost order.
func (f *Front[T]) Values() []T {
	out := make([]T, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Value
	}

	return out
}

// At returns the i-th entry in cost order. It panics if i is out of range.
func (f *Front[T]) At(i int) Entry[T] { return f.entries[i] }

// First returns the entry with the smallest cost.
func (f *Front[T]) First() (Entry[T], bool) {
	if len(f.entries) == 0 {
		return Entry[T]{}, false
	}

	return f.entries[0], true
}

// Last returns the entry with the largest cost.
func (f *Front[T]) Last() (Entry[T], bool) {
	if len(f.entries) == 0 {
		return Entry[T]{}, false
	}

	return f.entries[len(f.entries)-1], true
}

// Floor returns the entry with the greatest cost <= c.
func (f *Front[T]) Floor(c weight.Vector) (Entry[T], bool) {
	i := f.search(c)
	if i < len(f.entries) && f.entries[i].Cost.Equal(c) {
		return f.entries[i], true
	}

	return f.at(i - 1)
}

// Ceiling returns the entry with the least cost >= c.
func (f *Front[T]) Ceiling(c weight.Vector) (Entry[T], bool) {
	return f.at(f.search(c))
}

// Lower returns the entry with the greatest cost < c.
func (f *Front[T]) Lower(c weight.Vector) (Entry[T], bool) {
	return f.at(f.search(c) - 1)
}

// Higher returns the entry with the least cost > c.
func (f *Front[T]) Higher(c weight.Vector) (Entry[T], bool) {
	i := f.search(c)
	if i < len(f.entries) && f.entries[i].Cost.Equal(c) {
		i++
	}

	return f.at(i)
}

func (f *Front[T]) at(i int) (Entry[T], bool) {
	if i < 0 || i >= len(f.entries) {
		return Entry[T]{}, false
	}

	return f.entries[i], true
}

// Corners returns the local nadir points of adjacent entries: for each
// consecutive pair (a, b) the point (b.x, a.y). With a two-dimensional
// dominance-managed front these are the outer corners of its staircase.
func (f *Front[T]) Corners() []weight.Vector {
	if len(f.entries) < 2 {
		return nil
	}
	out := make([]weight.Vector, 0, len(f.entries)-1)
	for i := 1; i < len(f.entries); i++ {
		a, b := f.entries[i-1].Cost, f.entries[i].Cost
		out = append(out, weight.New(b.At(0), a.At(1)))
	}

	return out
}

// Merge adds every entry of o to f and returns how many were accepted.
func (f *Front[T]) Merge(o *Front[T]) int {
	n := 0
	for _, e := range o.entries {
		if f.Add(e.Cost, e.Value) {
			n++
		}
	}

	return n
}

// Clone returns a shallow copy: entries are copied, values are not.
func (f *Front[T]) Clone() *Front[T] {
	return &Front[T]{cfg: f.cfg, entries: f.Entries()}
}
