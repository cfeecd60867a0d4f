package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/bmst/prim_kruskal"
	"github.com/katalvlaran/bmst/weight"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000)
	key := prim_kruskal.Scalarized(weight.New(1, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g, key)
	}
}

// BenchmarkPrim measures performance on the same graph, starting from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000)
	key := prim_kruskal.Scalarized(weight.New(1, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, "V0", key)
	}
}
