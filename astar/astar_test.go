package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/astar"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/visit"
)

type (
	cell  = [2]int
	step  = core.Weighted[cell, int]
	wedge = core.Weighted[string, int]
)

// grid builds an undirected side×side lattice with unit costs.
func grid(side int) *core.ListGraph[cell, step] {
	var vertices []cell
	var edges []step
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			vertices = append(vertices, cell{r, c})
			if c+1 < side {
				edges = append(edges, step{First: cell{r, c}, Second: cell{r, c + 1}, Weight: 1})
			}
			if r+1 < side {
				edges = append(edges, step{First: cell{r, c}, Second: cell{r + 1, c}, Weight: 1})
			}
		}
	}
	return core.NewListGraph(vertices, edges)
}

func manhattan(goal cell) astar.Heuristic[cell, int] {
	return func(v cell) int {
		return abs(v[0]-goal[0]) + abs(v[1]-goal[1])
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestRun_Validation(t *testing.T) {
	none := visit.Visitor[cell, step]{}
	_, _, err := astar.Run[cell, int, step](nil, cell{}, cell{}, manhattan(cell{}), none)
	require.ErrorIs(t, err, astar.ErrNilGraph)

	_, _, err = astar.Run[cell, int, step](grid(2), cell{}, cell{1, 1}, nil, none)
	require.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, _, err = astar.Run(grid(2), cell{}, cell{1, 1}, manhattan(cell{1, 1}), none, astar.WithMaxExpansions(-1))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
}

func TestRun_GridWithManhattan(t *testing.T) {
	goal := cell{3, 2}
	gv := astar.NewGameVisitor[cell, step]()
	d, ok, err := astar.Run(grid(4), cell{0, 0}, goal, manhattan(goal), gv.Visitor())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, d)

	moves, ok := gv.Path(cell{0, 0}, goal)
	require.True(t, ok)
	require.Len(t, moves, 5)
	require.Equal(t, cell{0, 0}, moves[0].Source())
	require.Equal(t, goal, moves[len(moves)-1].Target())
	for i := 1; i < len(moves); i++ {
		require.Equal(t, moves[i-1].Target(), moves[i].Source(), "moves must chain")
	}
}

func TestRun_StartIsGoal(t *testing.T) {
	gv := astar.NewGameVisitor[cell, step]()
	d, ok, err := astar.Run(grid(3), cell{1, 1}, cell{1, 1}, manhattan(cell{1, 1}), gv.Visitor())
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, d)

	moves, ok := gv.Path(cell{1, 1}, cell{1, 1})
	require.True(t, ok)
	require.Empty(t, moves)
}

func TestRun_Unreachable(t *testing.T) {
	g := core.NewListGraph([]string{"a", "b", "c"}, []wedge{{First: "a", Second: "b", Weight: 1}})
	gv := astar.NewGameVisitor[string, wedge]()
	d, ok, err := astar.Run(g, "a", "c", astar.Zero[string, int], gv.Visitor())
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, d)

	_, ok = gv.Path("a", "c")
	require.False(t, ok)
}

func TestRun_AbsentStart(t *testing.T) {
	rec := &visit.Recorder[cell, step]{}
	goal := cell{1, 1}
	d, ok, err := astar.Run(grid(2), cell{9, 9}, goal, manhattan(goal), rec.Visitor())
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, d)
	require.Empty(t, rec.Events)
}

func TestRun_ExpansionLimit(t *testing.T) {
	goal := cell{3, 3}
	_, _, err := astar.Run(grid(4), cell{0, 0}, goal, manhattan(goal), visit.Visitor[cell, step]{}, astar.WithMaxExpansions(1))
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
}

func TestRun_NegativeWeight(t *testing.T) {
	g := core.NewListGraph([]string{"a", "b"}, []wedge{{First: "a", Second: "b", Weight: -2}}, core.WithDirected())
	_, _, err := astar.Run(g, "a", "b", astar.Zero[string, int], visit.Visitor[string, wedge]{})
	require.ErrorIs(t, err, astar.ErrNegativeWeight)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := astar.Run(grid(2), cell{}, cell{1, 1}, manhattan(cell{1, 1}), visit.Visitor[cell, step]{}, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_ReopensClosedVertex uses an admissible but inconsistent heuristic:
// "a" is closed through the expensive direct edge before the cheaper route
// via "b" is found, and must be expanded again.
func TestRun_ReopensClosedVertex(t *testing.T) {
	g := core.NewListGraph([]string{"s", "a", "b", "g"}, []wedge{
		{First: "s", Second: "a", Weight: 4},
		{First: "s", Second: "b", Weight: 1},
		{First: "b", Second: "a", Weight: 1},
		{First: "a", Second: "g", Weight: 4},
	}, core.WithDirected())
	h := func(v string) int {
		if v == "b" {
			return 5
		}
		return 0
	}
	gv := astar.NewGameVisitor[string, wedge]()
	d, ok, err := astar.Run(g, "s", "g", h, gv.Visitor())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 6, d)

	moves, ok := gv.Path("s", "g")
	require.True(t, ok)
	var route []string
	for _, m := range moves {
		route = append(route, m.Source())
	}
	require.Equal(t, []string{"s", "b", "a"}, route)
}

// TestRun_AgreesWithDijkstra uses exact remaining distances as the
// heuristic, which is consistent, and a zero heuristic.
func TestRun_AgreesWithDijkstra(t *testing.T) {
	type iedge = core.Weighted[int, int]
	rng := rand.New(rand.NewSource(21))
	for round := 0; round < 40; round++ {
		n := 2 + rng.Intn(10)
		var edges []iedge
		for i := 0; i < 2*n; i++ {
			edges = append(edges, iedge{First: rng.Intn(n), Second: rng.Intn(n), Weight: rng.Intn(9)})
		}
		g := core.NewListGraph(rng.Perm(n), edges)
		goal := rng.Intn(n)

		fromStart, err := dijkstra.Run[int, int](g, 0, visit.Visitor[int, iedge]{})
		require.NoError(t, err)
		toGoal, err := dijkstra.Run[int, int](g, goal, visit.Visitor[int, iedge]{})
		require.NoError(t, err)
		exact := func(v int) int { return toGoal[v] }

		for _, h := range []astar.Heuristic[int, int]{astar.Zero[int, int], exact} {
			d, ok, err := astar.Run(g, 0, goal, h, visit.Visitor[int, iedge]{})
			require.NoError(t, err)
			want, reachable := fromStart[goal]
			require.Equal(t, reachable, ok, "round %d", round)
			if reachable {
				require.Equal(t, want, d, "round %d", round)
			}
		}
	}
}

func TestConvex(t *testing.T) {
	_, err := astar.Convex([]astar.Heuristic[int, int]{astar.Zero[int, int]}, []int{1, 2})
	require.ErrorIs(t, err, astar.ErrCoefficients)

	double := func(v int) int { return 2 * v }
	id := func(v int) int { return v }
	h, err := astar.Convex([]astar.Heuristic[int, int]{double, id}, []int{3, 1})
	require.NoError(t, err)
	require.Equal(t, 7*5, h(5))
}

func TestGameVisitor_Reset(t *testing.T) {
	gv := astar.NewGameVisitor[cell, step]()
	_, _, err := astar.Run(grid(2), cell{0, 0}, cell{1, 1}, manhattan(cell{1, 1}), gv.Visitor())
	require.NoError(t, err)
	gv.Reset()
	_, ok := gv.Path(cell{0, 0}, cell{1, 1})
	require.False(t, ok)
}
