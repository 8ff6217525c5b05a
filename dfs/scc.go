package dfs

import (
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// transposer is implemented by graphs that can reverse themselves cheaply.
type transposer[V comparable, E core.Edge[V, E]] interface {
	Transpose() *core.ListGraph[V, E]
}

// transpose returns g with every edge reversed.
func transpose[V comparable, E core.Edge[V, E]](g core.Graph[V, E]) (*core.ListGraph[V, E], error) {
	if t, ok := g.(transposer[V, E]); ok {
		return t.Transpose(), nil
	}
	vertices := g.Vertices()
	var reversed []E
	for _, v := range vertices {
		out, err := g.OutEdges(v)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			reversed = append(reversed, e.Reverse())
		}
	}
	return core.NewListGraph(vertices, reversed, core.WithDirected()), nil
}

// StronglyConnected labels the strongly connected components of a directed
// graph with Kosaraju's algorithm.
//
// Component ids start at 1 and are assigned in the order the second pass
// meets them, which is a topological order of the condensation.
//
// Steps:
//  1. Forest DFS on g collecting vertices by decreasing finish time.
//  2. On the transpose, one Walker visits those vertices in that order; every
//     Visit that discovers anything forms one component.
//
// Complexity: O(V + E).
func StronglyConnected[V comparable, E core.Edge[V, E]](g core.Graph[V, E], opts ...Option) (ids map[V]int, count int, err error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if !g.Directed() {
		return nil, 0, ErrNotDirected
	}

	sorter := NewTopologicalSorter[V, E]()
	if err = Forest(g, sorter.Visitor(), opts...); err != nil {
		return nil, 0, err
	}

	t, err := transpose(g)
	if err != nil {
		return nil, 0, err
	}
	members := &visit.Enumerator[V, E]{}
	w, err := NewWalker[V, E](t, members.Visitor(), opts...)
	if err != nil {
		return nil, 0, err
	}

	ids = make(map[V]int, g.VerticesCount())
	for _, root := range sorter.FinishOrder() {
		if w.Color(root) != visit.White {
			continue
		}
		members.Reset()
		if err = w.Visit(root); err != nil {
			return nil, 0, err
		}
		count++
		for _, v := range members.List() {
			ids[v] = count
		}
	}
	return ids, count, nil
}
