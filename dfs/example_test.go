package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
)

// ExampleTopologicalSort orders build steps so that dependencies come first.
func ExampleTopologicalSort() {
	g := core.NewListGraph(
		[]string{"fetch", "compile", "link", "test"},
		[]core.Pair[string]{
			core.P("fetch", "compile"),
			core.P("compile", "link"),
			core.P("link", "test"),
			core.P("compile", "test"),
		},
		core.WithDirected(),
	)
	order, ok, err := dfs.TopologicalSort[string, core.Pair[string]](g)
	if err != nil {
		panic(err)
	}
	fmt.Println(order, ok)
	// Output: [fetch compile link test] true
}

// ExampleBridges finds the single edge whose removal splits the graph.
func ExampleBridges() {
	g := core.NewListGraph(
		[]int{1, 2, 3, 4},
		[]core.Pair[int]{core.P(1, 2), core.P(2, 3), core.P(3, 1), core.P(3, 4)},
	)
	bridges, err := dfs.Bridges[int, core.Pair[int]](g)
	if err != nil {
		panic(err)
	}
	fmt.Println(bridges)
	// Output: [{3 4}]
}
