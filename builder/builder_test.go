package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmst/builder"
	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/spantree"
)

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		opts         []builder.BuilderOption
		wantV, wantE int
		wantTrees    int // spanning tree count, 0 = unchecked
	}{
		{"Complete(1)", builder.Complete(1), nil, 1, 0, 1},
		{"Complete(5)", builder.Complete(5), nil, 5, 10, 125},
		{"Path(4)", builder.Path(4), nil, 4, 3, 1},
		{"Cycle(6)", builder.Cycle(6), nil, 6, 6, 6},
		{"Wheel(5)", builder.Wheel(5), nil, 5, 8, 45},
		{"Grid(2,2)", builder.Grid(2, 2), nil, 4, 4, 4},
		{"Grid(2,3)", builder.Grid(2, 3), nil, 6, 7, 15},
		{"RandomConnected(8,0)", builder.RandomConnected(8, 0), []builder.BuilderOption{builder.WithSeed(3)}, 8, 7, 1},
		{"RandomConnected(6,1)", builder.RandomConnected(6, 1), []builder.BuilderOption{builder.WithSeed(3)}, 6, 15, 1296},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())

			inst, err := spantree.NewInstance(g, nil)
			require.NoError(t, err, "fixtures are connected")
			if tc.wantTrees > 0 {
				assert.Equal(t, tc.wantTrees, spantree.Count(inst))
			}
		})
	}
}

func TestBuilders_IDsAndOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
	assert.Equal(t, "C", edges[2].From)
	assert.Equal(t, "A", edges[2].To)

	grid, err := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, grid.Vertices())

	wheel, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("r")}, builder.Wheel(4))
	require.NoError(t, err)
	deg, err := wheel.Degree(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
}

func TestBuilders_Weights(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, []float64{1, 1}, e.Weight.Values())
	}

	g3, err := builder.BuildGraph(
		[]core.GraphOption{core.WithObjectives(3)},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.IntVectorFn(2, 4))},
		builder.Complete(4))
	require.NoError(t, err)
	for _, e := range g3.Edges() {
		require.Equal(t, 3, e.Weight.Dim())
		for _, x := range e.Weight.Values() {
			assert.Contains(t, []float64{2, 3, 4}, x)
		}
	}

	_, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantVectorFn(1, 2, 3))},
		builder.Path(2))
	assert.ErrorIs(t, err, core.ErrDimension)
}

func TestBuilders_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(99), builder.WithWeightFn(builder.ConflictingVectorFn(20, 3))},
			builder.RandomConnected(10, 0.25))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	ea, eb := a.Edges(), b.Edges()
	require.Equal(t, len(ea), len(eb))
	for i := range ea {
		assert.Equal(t, ea[i].ID, eb[i].ID)
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
		assert.True(t, ea[i].Weight.Equal(eb[i].Weight))
	}
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Grid(3,0)", builder.Grid(3, 0), nil, builder.ErrTooFewVertices},
		{"RandomConnected(0,.5)", builder.RandomConnected(0, .5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomConnected(p>1)", builder.RandomConnected(4, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomConnected(no rng)", builder.RandomConnected(4, .5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantVectorFn() })
	assert.Panics(t, func() { builder.ConstantVectorFn(1, -1) })
	assert.Panics(t, func() { builder.UniformVectorFn(-1, 2) })
	assert.Panics(t, func() { builder.UniformVectorFn(3, 2) })
	assert.Panics(t, func() { builder.IntVectorFn(5, 4) })
	assert.Panics(t, func() { builder.ConflictingVectorFn(3, 4) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}

func TestVectorFns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, []float64{1, 1, 1}, builder.DefaultVectorFn(rng, 3).Values())
	assert.Equal(t, []float64{4, 2}, builder.ConstantVectorFn(4, 2)(rng, 2).Values())
	assert.Equal(t, []float64{1, 1}, builder.UniformVectorFn(5, 9)(nil, 2).Values(), "nil rng falls back")

	for i := 0; i < 200; i++ {
		for _, x := range builder.UniformVectorFn(5, 9)(rng, 2).Values() {
			assert.GreaterOrEqual(t, x, 5.0)
			assert.Less(t, x, 9.0)
		}
		for _, x := range builder.IntVectorFn(0, 3)(rng, 2).Values() {
			assert.Contains(t, []float64{0, 1, 2, 3}, x)
		}
		w := builder.ConflictingVectorFn(10, 2)(rng, 2)
		s := w.At(0) + w.At(1)
		assert.GreaterOrEqual(t, s, 8.0)
		assert.LessOrEqual(t, s, 12.0)
	}
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "123", builder.DefaultIDFn(123))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
}
