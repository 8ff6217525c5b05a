package dfs_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/visit"
)

type edge = core.Pair[int]

func path(n int, opts ...core.Option) *core.ListGraph[int, edge] {
	vertices := make([]int, n)
	var edges []edge
	for i := range vertices {
		vertices[i] = i
		if i > 0 {
			edges = append(edges, core.P(i-1, i))
		}
	}
	return core.NewListGraph(vertices, edges, opts...)
}

// EngineSuite groups tests for the traversal engine itself.
type EngineSuite struct {
	suite.Suite
}

// TestHookOrder pins the recursive hook order on an undirected path.
func (s *EngineSuite) TestHookOrder() {
	rec := &visit.Recorder[int, edge]{}
	require.NoError(s.T(), dfs.Run(path(3), 0, rec.Visitor()))

	want := []string{
		"discover 0", "examine_vertex 0",
		"examine_edge {0 1}", "tree_edge {0 1}",
		"discover 1", "examine_vertex 1",
		"examine_edge {1 0}", "back_edge {1 0}", "gray_target 0",
		"examine_edge {1 2}", "tree_edge {1 2}",
		"discover 2", "examine_vertex 2",
		"examine_edge {2 1}", "back_edge {2 1}", "gray_target 1",
		"finish 2", "finish_edge {1 2}",
		"finish 1", "finish_edge {0 1}",
		"finish 0",
	}
	if diff := cmp.Diff(want, rec.Strings()); diff != "" {
		s.T().Errorf("hook order (-want +got):\n%s", diff)
	}
}

// TestSkipParent drops the reverse of each tree edge before ExamineEdge.
func (s *EngineSuite) TestSkipParent() {
	rec := &visit.Recorder[int, edge]{}
	require.NoError(s.T(), dfs.Run(path(3), 0, rec.Visitor(), dfs.WithSkipParent()))

	want := []string{
		"discover 0", "examine_vertex 0",
		"examine_edge {0 1}", "tree_edge {0 1}",
		"discover 1", "examine_vertex 1",
		"examine_edge {1 2}", "tree_edge {1 2}",
		"discover 2", "examine_vertex 2",
		"finish 2", "finish_edge {1 2}",
		"finish 1", "finish_edge {0 1}",
		"finish 0",
	}
	if diff := cmp.Diff(want, rec.Strings()); diff != "" {
		s.T().Errorf("hook order (-want +got):\n%s", diff)
	}
}

// TestBlackTarget: a forward edge in a directed graph reaches a Black vertex.
func (s *EngineSuite) TestBlackTarget() {
	g := core.NewListGraph([]int{0, 1, 2}, []edge{core.P(0, 1), core.P(1, 2), core.P(0, 2)}, core.WithDirected())
	var black []int
	v := visit.Visitor[int, edge]{OnBlackTarget: func(u int) { black = append(black, u) }}
	require.NoError(s.T(), dfs.Run(g, 0, v))
	require.Equal(s.T(), []int{2}, black)
}

func (s *EngineSuite) TestForestCoversEveryComponent() {
	g := core.NewListGraph([]int{3, 1, 2, 4}, []edge{core.P(1, 2), core.P(4, 3)}, core.WithDirected())
	en := &visit.Enumerator[int, edge]{}
	require.NoError(s.T(), dfs.Forest(g, en.Visitor()))
	require.Equal(s.T(), []int{3, 1, 2, 4}, en.List())
}

func (s *EngineSuite) TestAbsentStartAndNilGraph() {
	en := &visit.Enumerator[int, edge]{}
	require.NoError(s.T(), dfs.Run(path(2), 7, en.Visitor()))
	require.Empty(s.T(), en.List())

	require.ErrorIs(s.T(), dfs.Run[int, edge](nil, 0, en.Visitor()), dfs.ErrGraphNil)
	require.ErrorIs(s.T(), dfs.Forest[int, edge](nil, en.Visitor()), dfs.ErrGraphNil)
}

// TestDeepChain would overflow a recursive implementation's stack budget
// long before the iterative one notices.
func (s *EngineSuite) TestDeepChain() {
	const n = 200_000
	g := path(n, core.WithDirected())
	finished := 0
	v := visit.Visitor[int, edge]{OnFinish: func(int) { finished++ }}
	require.NoError(s.T(), dfs.Run(g, 0, v))
	require.Equal(s.T(), n, finished)
}

func (s *EngineSuite) TestMaxDepth() {
	en := &visit.Enumerator[int, edge]{}
	require.NoError(s.T(), dfs.Run(path(5), 0, en.Visitor(), dfs.WithMaxDepth(2)))
	require.Equal(s.T(), []int{0, 1, 2}, en.List())
}

func (s *EngineSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := dfs.Run(path(3), 0, visit.Visitor[int, edge]{}, dfs.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func (s *EngineSuite) TestWalkerSharesColouring() {
	g := path(4, core.WithDirected())
	en := &visit.Enumerator[int, edge]{}
	w, err := dfs.NewWalker[int, edge](g, en.Visitor())
	require.NoError(s.T(), err)

	require.NoError(s.T(), w.Visit(2))
	require.Equal(s.T(), []int{2, 3}, en.List())
	require.Equal(s.T(), visit.Black, w.Color(3))
	require.Equal(s.T(), visit.White, w.Color(0))

	en.Reset()
	require.NoError(s.T(), w.Visit(0))
	require.Equal(s.T(), []int{0, 1}, en.List(), "already Black vertices are not revisited")
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
