package bmst_test

import (
	"fmt"

	"github.com/katalvlaran/bmst/bmst"
	"github.com/katalvlaran/bmst/core"
	"github.com/katalvlaran/bmst/weight"
)

// ExampleSolve computes every efficient spanning tree of a five-vertex graph.
func ExampleSolve() {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2", weight.New(2, 10))
	_, _ = g.AddEdge("1", "3", weight.New(5, 9))
	_, _ = g.AddEdge("1", "4", weight.New(7, 9))
	_, _ = g.AddEdge("2", "3", weight.New(13, 1))
	_, _ = g.AddEdge("2", "4", weight.New(1, 13))
	_, _ = g.AddEdge("3", "4", weight.New(5, 15))
	_, _ = g.AddEdge("4", "5", weight.New(9, 5))

	front, err := bmst.Solve(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range bmst.Solutions(front) {
		fmt.Println(s.Cost, s.EdgeIDs)
	}
	// Output:
	// (17, 37) [e1 e2 e5 e7]
	// (22, 36) [e2 e3 e5 e7]
	// (23, 33) [e1 e2 e3 e7]
	// (25, 29) [e1 e4 e5 e7]
	// (28, 28) [e2 e4 e5 e7]
	// (31, 25) [e1 e3 e4 e7]
	// (34, 24) [e2 e3 e4 e7]
}

// ExampleFirstPhase lists the extreme supported costs only.
func ExampleFirstPhase() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", weight.New(1, 4))
	_, _ = g.AddEdge("b", "c", weight.New(4, 1))
	_, _ = g.AddEdge("a", "c", weight.New(2, 2))

	front, _ := bmst.FirstPhase(g)
	fmt.Println(front.Costs())
	// Output:
	// [(3, 6) (6, 3)]
}
