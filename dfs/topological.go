package dfs

import (
	"slices"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// TopologicalSorter collects vertices in reverse finishing order and notes
// whether a cycle was seen. Feed it to Forest (or to repeated Visit calls on
// one Walker) over a directed graph.
type TopologicalSorter[V comparable, E core.Edge[V, E]] struct {
	finished []V // post-order
	cyclic   bool
}

// NewTopologicalSorter returns an empty sorter.
func NewTopologicalSorter[V comparable, E core.Edge[V, E]]() *TopologicalSorter[V, E] {
	return &TopologicalSorter[V, E]{}
}

// Visitor returns the hooks to hand to the DFS engine.
func (t *TopologicalSorter[V, E]) Visitor() visit.Visitor[V, E] {
	return visit.Visitor[V, E]{
		OnFinish:     func(v V) { t.finished = append(t.finished, v) },
		OnGrayTarget: func(V) { t.cyclic = true },
	}
}

// Order returns the topological order, or (nil, false) when a Gray vertex
// was reached through an edge, i.e. the graph has a cycle.
func (t *TopologicalSorter[V, E]) Order() ([]V, bool) {
	if t.cyclic {
		return nil, false
	}
	return t.FinishOrder(), true
}

// FinishOrder returns vertices by decreasing finishing time regardless of
// cycles. Kosaraju's second pass consumes this order.
func (t *TopologicalSorter[V, E]) FinishOrder() []V {
	out := slices.Clone(t.finished)
	slices.Reverse(out)
	return out
}

// Reset clears the collected order and the cycle flag.
func (t *TopologicalSorter[V, E]) Reset() {
	t.finished = t.finished[:0]
	t.cyclic = false
}

// TopologicalSort orders the vertices of a directed graph so that every edge
// points forward. ok is false (and order empty) when g has a cycle.
//
// Roots are taken in g.Vertices() order, so the result is deterministic.
// Complexity: O(V + E).
func TopologicalSort[V comparable, E core.Edge[V, E]](g core.Graph[V, E], opts ...Option) (order []V, ok bool, err error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if !g.Directed() {
		return nil, false, ErrNotDirected
	}
	sorter := NewTopologicalSorter[V, E]()
	if err = Forest(g, sorter.Visitor(), opts...); err != nil {
		return nil, false, err
	}
	order, ok = sorter.Order()
	if !ok {
		return []V{}, false, nil
	}
	return order, true, nil
}
