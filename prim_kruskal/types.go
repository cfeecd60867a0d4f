// Package prim_kruskal defines configuration options, key functions and
// sentinel errors for MST computation over vector-weighted graphs.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/weight"
)

// ErrInvalidGraph indicates that MST algorithms received a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that a spanning tree covering all vertices cannot
// be formed with the admissible edges.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrForcedCycle indicates that the forced edges handed to Greedy contain a cycle.
var ErrForcedCycle = errors.New("prim_kruskal: forced edges contain a cycle")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// KeyFunc maps an edge to the key minimized by the MST algorithms.
// Keys are compared lexicographically with weight.Vector.Compare, so a
// 1-vector gives the classic scalar MST and a longer vector gives the
// lexicographic optimum. All keys returned for one graph must share a dimension.
type KeyFunc func(e *core.Edge) weight.Vector

// Objective returns a KeyFunc selecting the i-th objective of the edge weight.
func Objective(i int) KeyFunc {
	return func(e *core.Edge) weight.Vector { return weight.New(e.Weight.At(i)) }
}

// Lexicographic returns a KeyFunc that reorders the edge weight by the given
// objective indices, e.g. Lexicographic(1, 0) minimizes objective 1 first.
func Lexicographic(order ...int) KeyFunc {
	return func(e *core.Edge) weight.Vector {
		xs := make([]float64, len(order))
		for i, o := range order {
			xs[i] = e.Weight.At(o)
		}

		return weight.New(xs...)
	}
}

// Scalarized returns a KeyFunc for the weighted sum coeffs·w(e).
func Scalarized(coeffs weight.Vector) KeyFunc {
	return func(e *core.Edge) weight.Vector { return weight.New(e.Weight.Scalarize(coeffs)) }
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph, key).
//	– MethodPrim:    Prim(graph, opts.Root, key).
//	– Otherwise:     ErrInvalidGraph.
//
// Returns the tree edges, the summed key and an error.
func Compute(graph *core.Graph, key KeyFunc, opts MSTOptions) ([]core.Edge, weight.Vector, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, key)
	case MethodPrim:
		return Prim(graph, opts.Root, key)
	default:
		return nil, weight.Vector{}, errors.Wrapf(ErrInvalidGraph, "unknown method %q", opts.Method)
	}
}

// sumKeys accumulates keys; an empty input yields the zero-dimension vector.
func sumKeys(keys []weight.Vector) weight.Vector {
	if len(keys) == 0 {
		return weight.Vector{}
	}
	total := keys[0]
	for _, k := range keys[1:] {
		total = total.Add(k)
	}

	return total
}
