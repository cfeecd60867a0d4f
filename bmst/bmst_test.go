package bmst_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bmst/bmst"
	"github.com/katalvlaran/bmst/builder"
	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/pareto"
	"github.com/katalvlaran/bmst/spantree"
	"github.com/katalvlaran/bmst/weight"
)

var strategies = []bmst.Strategy{bmst.KBest, bmst.BranchAndBound}

// scenario is the five-vertex reference graph; edge IDs e1..e7 follow the
// insertion order 1-2 1-3 1-4 2-3 2-4 3-4 4-5.
func scenario(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		x, y float64
	}{
		{"1", "2", 2, 10}, {"1", "3", 5, 9}, {"1", "4", 7, 9}, {"2", "3", 13, 1},
		{"2", "4", 1, 13}, {"3", "4", 5, 15}, {"4", "5", 9, 5},
	} {
		_, err := g.AddEdge(e.u, e.v, weight.New(e.x, e.y))
		require.NoError(t, err)
	}

	return g
}

// randomGraph builds a connected multigraph with small integer weights.
func randomGraph(t testing.TB, rng *rand.Rand, n, extra int) *core.Graph {
	t.Helper()
	return randomWeighted(t, rng, n, extra, func() weight.Vector {
		return weight.New(float64(rng.Intn(10)), float64(rng.Intn(10)))
	})
}

// randomWeighted builds a connected multigraph: a random recursive tree on
// n vertices plus up to extra random edges, weights drawn from w.
func randomWeighted(t testing.TB, rng *rand.Rand, n, extra int, w func() weight.Vector) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	id := func(i int) string { return fmt.Sprintf("v%d", i) }
	require.NoError(t, g.AddVertex(id(0)))
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(id(rng.Intn(i)), id(i), w())
		require.NoError(t, err)
	}
	for k := 0; k < extra; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		_, err := g.AddEdge(id(u), id(v), w())
		require.NoError(t, err)
	}

	return g
}

// paretoCosts is the exhaustive oracle: distinct non-dominated tree costs.
func paretoCosts(t testing.TB, g *core.Graph) []string {
	t.Helper()
	inst, err := spantree.NewInstance(g, nil)
	require.NoError(t, err)

	all := pareto.New[struct{}]()
	spantree.Enumerate(inst, func(tr spantree.Tree) bool {
		all.Add(tr.Cost(), struct{}{})
		return true
	})

	return render(all.Costs())
}

func render(cs []weight.Vector) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	sort.Strings(out)

	return out
}

func TestFirstPhase_Scenario(t *testing.T) {
	f, err := bmst.FirstPhase(scenario(t))
	require.NoError(t, err)
	assert.Equal(t, []weight.Vector{
		weight.New(17, 37), weight.New(25, 29), weight.New(31, 25), weight.New(34, 24),
	}, f.Costs())

	sols := bmst.Solutions(f)
	require.Len(t, sols, 4)
	// lexicographic seeds: {1-2, 1-3, 2-4, 4-5} and {1-3, 1-4, 2-3, 4-5}
	assert.Equal(t, []string{"e1", "e2", "e5", "e7"}, sols[0].EdgeIDs)
	assert.Equal(t, []string{"e2", "e3", "e4", "e7"}, sols[3].EdgeIDs)
}

func TestSolve_Scenario(t *testing.T) {
	want := map[string][]string{
		"(17, 37)": {"e1", "e2", "e5", "e7"},
		"(22, 36)": {"e2", "e3", "e5", "e7"},
		"(23, 33)": {"e1", "e2", "e3", "e7"},
		"(25, 29)": {"e1", "e4", "e5", "e7"},
		"(28, 28)": {"e2", "e4", "e5", "e7"},
		"(31, 25)": {"e1", "e3", "e4", "e7"},
		"(34, 24)": {"e2", "e3", "e4", "e7"},
	}
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			g := scenario(t)
			f, err := bmst.Solve(g, bmst.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, len(want), f.Len())

			sols := bmst.Solutions(f)
			for _, sol := range sols {
				assert.Equal(t, want[sol.Cost.String()], sol.EdgeIDs, "cost %v", sol.Cost)
			}
		})
	}
}

func TestSecondPhase_FromFirstPhase(t *testing.T) {
	g := scenario(t)
	extreme, err := bmst.FirstPhase(g)
	require.NoError(t, err)

	for _, s := range strategies {
		f, err := bmst.SecondPhase(g, extreme, bmst.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 7, f.Len(), s.String())
	}
	assert.Equal(t, 4, extreme.Len(), "extreme front is not modified")

	f, err := bmst.SecondPhase(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, f.Len())
}

// Both strategies must find exactly the non-dominated costs of an
// exhaustive enumeration, with sound trees behind every cost.
func TestSolve_MatchesEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 40; i++ {
		g := randomGraph(t, rng, 2+rng.Intn(5), rng.Intn(7))
		want := paretoCosts(t, g)
		inst, err := spantree.NewInstance(g, nil)
		require.NoError(t, err)

		for _, s := range strategies {
			f, err := bmst.Solve(g, bmst.WithStrategy(s))
			require.NoError(t, err)
			assert.Equal(t, want, render(f.Costs()), "graph %d, %s", i, s)

			for cost, tr := range f.All() {
				assert.True(t, inst.IsSpanningTree(tr.Edges()))
				assert.True(t, cost.Equal(tr.Cost()))
			}
		}
	}
}

// Real-valued weights put near-collinear points on the hull; every phase
// must still terminate and agree with enumeration.
func TestSolve_RealWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	w := func() weight.Vector { return weight.New(rng.Float64()*10, rng.Float64()*10) }
	for i := 0; i < 60; i++ {
		n := 5 + rng.Intn(3)
		g := randomWeighted(t, rng, n, n+rng.Intn(n), w)
		want := paretoCosts(t, g)

		for _, s := range strategies {
			f, err := bmst.Solve(g, bmst.WithStrategy(s))
			require.NoError(t, err)
			assert.Equal(t, want, render(f.Costs()), "graph %d, %s", i, s)
		}
	}
}

// Between the extreme points (8.7, 12.9) and (10, 11.6) the perpendicular
// optimum is (10, 11.6) itself, and its scalarized value rounds one ulp
// below that of (8.7, 12.9).
func TestSolve_RoundingAtHullEnds(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for _, e := range []struct {
		u, v string
		x, y float64
	}{
		{"0", "1", 2.2, 6.2}, {"1", "2", 6.6, 2.6}, {"2", "3", 2.1, 2.0},
		{"0", "1", 0.9, 7.5}, {"0", "2", 5.7, 3.4}, {"1", "3", 9.7, 0.4},
	} {
		_, err := g.AddEdge(e.u, e.v, weight.New(e.x, e.y))
		require.NoError(t, err)
	}
	want := paretoCosts(t, g)
	require.Len(t, want, 8)

	extreme, err := bmst.FirstPhase(g)
	require.NoError(t, err)
	assert.Equal(t, 5, extreme.Len())

	for _, s := range strategies {
		f, err := bmst.Solve(g, bmst.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, want, render(f.Costs()), s.String())
	}
}

func TestSolve_CompleteGraphsCrossValidate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 3; n <= 5; n++ {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				_, err := g.AddEdge(fmt.Sprint(i), fmt.Sprint(j),
					weight.New(float64(1+rng.Intn(20)), float64(1+rng.Intn(20))))
				require.NoError(t, err)
			}
		}

		kb, err := bmst.Solve(g, bmst.WithStrategy(bmst.KBest))
		require.NoError(t, err)
		bb, err := bmst.Solve(g, bmst.WithStrategy(bmst.BranchAndBound))
		require.NoError(t, err)
		assert.Equal(t, kb.Costs(), bb.Costs(), "K%d", n)
		assert.Equal(t, paretoCosts(t, g), render(bb.Costs()), "K%d", n)
	}
}

func TestSolve_BuilderFixtures(t *testing.T) {
	fixtures := map[string]builder.Constructor{
		"grid-3x3": builder.Grid(3, 3),
		"wheel-6":  builder.Wheel(6),
		"cycle-7":  builder.Cycle(7),
		"random-7": builder.RandomConnected(7, 0.4),
		"path-5":   builder.Path(5),
	}
	for name, ctor := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(17), builder.WithWeightFn(builder.ConflictingVectorFn(12, 2))},
				ctor)
			require.NoError(t, err)
			want := paretoCosts(t, g)

			for _, s := range strategies {
				f, err := bmst.Solve(g, bmst.WithStrategy(s))
				require.NoError(t, err)
				assert.Equal(t, want, render(f.Costs()), s.String())
			}
		})
	}
}

func TestSolve_Degenerate(t *testing.T) {
	// One tree is best in both objectives.
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", weight.New(1, 1))
	_, _ = g.AddEdge("b", "c", weight.New(1, 1))
	_, _ = g.AddEdge("a", "c", weight.New(5, 5))

	for _, s := range strategies {
		f, err := bmst.Solve(g, bmst.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, 1, f.Len())
		first, _ := f.First()
		assert.True(t, first.Cost.Equal(weight.New(2, 2)))
	}

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("only"))
	f, err := bmst.Solve(single)
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())
	assert.Equal(t, 0, f.At(0).Value.Len())
}

func TestSolve_ParallelTies(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("a", "b", weight.New(1, 2))
	_, _ = g.AddEdge("a", "b", weight.New(1, 2))
	_, _ = g.AddEdge("b", "c", weight.New(3, 1))

	f, err := bmst.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())

	sols := bmst.Solutions(f)
	assert.Equal(t, []string{"e1", "e3"}, sols[0].EdgeIDs, "first tree wins under KeepFirst")
}

func TestSolve_Annotator(t *testing.T) {
	swap := func(e *core.Edge) weight.Vector { return weight.New(e.Weight.At(1), e.Weight.At(0)) }
	f, err := bmst.Solve(scenario(t), bmst.WithAnnotator(swap))
	require.NoError(t, err)

	first, _ := f.First()
	last, _ := f.Last()
	assert.True(t, first.Cost.Equal(weight.New(24, 34)))
	assert.True(t, last.Cost.Equal(weight.New(37, 17)))
	assert.Equal(t, 7, f.Len())

	// trees remember their graph; no annotator needed to render them
	assert.Equal(t, []string{"e2", "e3", "e4", "e7"}, bmst.Solutions(f)[0].EdgeIDs)
}

func TestSolutions_SkipsLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("a", "a", weight.New(0, 0))
	_, _ = g.AddEdge("a", "b", weight.New(1, 2))
	_, _ = g.AddEdge("b", "c", weight.New(2, 1))

	f, err := bmst.Solve(g)
	require.NoError(t, err)
	sols := bmst.Solutions(f)
	require.Len(t, sols, 1)
	assert.Equal(t, []string{"e2", "e3"}, sols[0].EdgeIDs)
	assert.True(t, sols[0].Cost.Equal(weight.New(3, 3)))
}

func TestErrors(t *testing.T) {
	_, err := bmst.Solve(nil)
	assert.ErrorIs(t, err, bmst.ErrNilGraph)

	_, err = bmst.Solve(scenario(t), bmst.WithStrategy(bmst.Strategy(42)))
	assert.ErrorIs(t, err, bmst.ErrUnknownStrategy)

	_, err = bmst.FirstPhase(scenario(t), bmst.WithAnnotator(nil))
	assert.ErrorIs(t, err, bmst.ErrNoAnnotator)

	_, err = bmst.FirstPhase(scenario(t), bmst.WithLogger(nil))
	assert.ErrorIs(t, err, bmst.ErrOptionViolation)

	_, err = bmst.FirstPhase(scenario(t), bmst.WithTiePolicy(pareto.TiePolicy(7)))
	assert.ErrorIs(t, err, bmst.ErrOptionViolation)

	split := core.NewGraph()
	_, _ = split.AddEdge("a", "b", weight.New(1, 1))
	_ = split.AddVertex("z")
	_, err = bmst.Solve(split)
	assert.ErrorIs(t, err, spantree.ErrDisconnected)

	_, err = bmst.Solve(core.NewGraph())
	assert.ErrorIs(t, err, spantree.ErrEmptyGraph)

	three := core.NewGraph(core.WithObjectives(3))
	_, _ = three.AddEdge("a", "b", weight.New(1, 2, 3))
	_, err = bmst.Solve(three)
	assert.ErrorIs(t, err, spantree.ErrDimension)
}

func TestDefaultOptions(t *testing.T) {
	o := bmst.DefaultOptions()
	assert.Equal(t, bmst.BranchAndBound, o.Strategy)
	assert.Equal(t, pareto.KeepFirst, o.TiePolicy)
	assert.NotNil(t, o.Logger)
	assert.NotNil(t, o.Annotator)
	assert.NoError(t, o.Err())

	o = bmst.DefaultOptions(bmst.WithStrategy(bmst.KBest), bmst.WithTiePolicy(pareto.KeepLast))
	assert.Equal(t, bmst.KBest, o.Strategy)
	assert.Equal(t, pareto.KeepLast, o.TiePolicy)
	assert.Equal(t, "k-best", o.Strategy.String())
	assert.Equal(t, "unknown", bmst.Strategy(9).String())
}

func TestLogging(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(observed)

	_, err := bmst.FirstPhase(scenario(t), bmst.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("first phase seeds").Len())
	assert.Equal(t, 2, logs.FilterMessage("extreme tree").Len())
	assert.Equal(t, 1, logs.FilterMessage("first phase done").Len())

	logs.TakeAll()
	_, err = bmst.Solve(scenario(t), bmst.WithLogger(logger), bmst.WithStrategy(bmst.KBest))
	require.NoError(t, err)
	assert.Equal(t, 3, logs.FilterMessage("k-best triangle").Len())
	assert.Equal(t, 3, logs.FilterMessage("k-best triangle done").Len())

	summary := logs.FilterMessage("pareto front computed").All()
	require.Len(t, summary, 1)
	assert.Equal(t, zapcore.InfoLevel, summary[0].Level)
	assert.Equal(t, int64(7), summary[0].ContextMap()["trees"])
	assert.Equal(t, "k-best", summary[0].ContextMap()["strategy"])

	logs.TakeAll()
	_, err = bmst.Solve(scenario(t), bmst.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("branch-and-bound done").Len())

	// zaptest routes the same events through testing.T.
	_, err = bmst.Solve(scenario(t), bmst.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
}
