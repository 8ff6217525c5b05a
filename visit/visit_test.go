package visit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

type edge = core.Pair[int]

func TestZeroVisitorIsNoOp(t *testing.T) {
	var v visit.Visitor[int, edge]
	require.NotPanics(t, func() {
		v.Initialize(1)
		v.Start(1)
		v.Discover(1)
		v.ExamineVertex(1)
		v.ExamineEdge(core.P(1, 2))
		v.TreeEdge(core.P(1, 2))
		v.NonTreeEdge(core.P(1, 2))
		v.BackEdge(core.P(1, 2))
		v.GrayTarget(2)
		v.BlackTarget(2)
		v.FinishEdge(core.P(1, 2))
		v.Finish(1)
		v.Optimize(core.P(1, 2))
	})
}

func TestMerge(t *testing.T) {
	var calls []string
	a := visit.Visitor[int, edge]{
		OnDiscover: func(v int) { calls = append(calls, "a") },
		OnFinish:   func(v int) { calls = append(calls, "a-finish") },
	}
	b := visit.Visitor[int, edge]{
		OnDiscover: func(v int) { calls = append(calls, "b") },
	}
	m := visit.Merge(a, b)
	m.Discover(1)
	m.Finish(1)
	m.TreeEdge(core.P(1, 2))

	require.Equal(t, []string{"a", "b", "a-finish"}, calls)
	require.Nil(t, m.OnTreeEdge, "hooks nobody sets stay nil")
}

func TestParentVisitor(t *testing.T) {
	p := visit.NewParentVisitor[int, edge]()
	v := p.Visitor()
	for _, e := range []edge{core.P(0, 1), core.P(1, 2), core.P(0, 3)} {
		v.TreeEdge(e)
	}
	v.Optimize(core.P(3, 4))

	require.Equal(t, []int{0, 1, 2}, p.Path(0, 2))
	require.Equal(t, []int{0, 3, 4}, p.Path(0, 4))
	require.Equal(t, []int{4}, p.Path(4, 4), "reached through an improving edge")
	require.Equal(t, []int{}, p.Path(5, 5), "never reached")
	require.Equal(t, []int{}, p.Path(0, 9), "never reached")
	require.Equal(t, []int{}, p.Path(3, 2), "chain does not pass through from")

	parent, ok := p.Parent(2)
	require.True(t, ok)
	require.Equal(t, 1, parent)
	_, ok = p.Parent(0)
	require.False(t, ok)

	p.Reset()
	require.Equal(t, []int{}, p.Path(0, 2))
	require.Equal(t, []int{}, p.Path(4, 4))
}

func TestParentVisitor_Roots(t *testing.T) {
	p := visit.NewParentVisitor[int, edge]()
	v := p.Visitor()
	require.False(t, p.Reached(7))
	require.Equal(t, []int{}, p.Path(7, 7))

	v.Start(7)
	require.True(t, p.Reached(7))
	require.Equal(t, []int{7}, p.Path(7, 7))

	v.Discover(8)
	require.Equal(t, []int{8}, p.Path(8, 8))

	p.Reset()
	require.False(t, p.Reached(7))
	require.Equal(t, []int{}, p.Path(8, 8))
}

func TestParentVisitor_Edges(t *testing.T) {
	type wedge = core.Weighted[string, int]
	g := core.NewListGraph([]string{"a", "b", "c"}, []wedge{
		{First: "a", Second: "b", Weight: 2},
		{First: "b", Second: "c", Weight: 3},
	})
	p := visit.NewParentVisitor[string, wedge]()
	v := p.Visitor()
	v.TreeEdge(wedge{First: "a", Second: "b", Weight: 2})
	v.TreeEdge(wedge{First: "b", Second: "c", Weight: 3})

	want := []wedge{{First: "a", Second: "b", Weight: 2}, {First: "b", Second: "c", Weight: 3}}
	if diff := cmp.Diff(want, p.Edges(g, "c")); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}
	require.Empty(t, p.Edges(g, "a"))
}

func TestRecorderAndEnumerator(t *testing.T) {
	rec := &visit.Recorder[int, edge]{WithInitialize: true}
	en := &visit.Enumerator[int, edge]{}
	v := visit.Merge(rec.Visitor(), en.Visitor())

	v.Initialize(0)
	v.Discover(0)
	v.ExamineEdge(core.P(0, 1))
	v.Discover(1)
	v.Optimize(core.P(0, 1))

	require.Equal(t, []string{
		"initialize 0",
		"discover 0",
		"examine_edge {0 1}",
		"discover 1",
		"optimize {0 1}",
	}, rec.Strings())
	require.Equal(t, []int{0, 1}, en.List())

	rec.Reset()
	en.Reset()
	require.Empty(t, rec.Strings())
	require.Empty(t, en.List())

	quiet := &visit.Recorder[int, edge]{}
	qv := quiet.Visitor()
	qv.Initialize(0)
	require.Empty(t, quiet.Events)
}

func TestNames(t *testing.T) {
	require.Equal(t, "tree_edge", visit.HookTreeEdge.String())
	require.Equal(t, "hook(200)", visit.Hook(200).String())
	require.Equal(t, "gray", visit.Gray.String())
	require.Equal(t, "unknown", visit.Color(9).String())
}
