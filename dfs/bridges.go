package dfs

import (
	"slices"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// BridgesFinder computes bridges of an undirected graph with Tarjan's
// low-link rule. It must run under WithSkipParent; without it every tree
// edge's reverse looks like a back edge and no bridge is ever reported.
//
// Edges implementing core.Multiplier with Multiplicity() > 1 stand for
// parallel copies and are never bridges.
type BridgesFinder[V comparable, E core.Edge[V, E]] struct {
	tin     map[V]int
	low     map[V]int
	timer   int
	bridges []E
}

// NewBridgesFinder returns an empty finder.
func NewBridgesFinder[V comparable, E core.Edge[V, E]]() *BridgesFinder[V, E] {
	return &BridgesFinder[V, E]{
		tin: make(map[V]int),
		low: make(map[V]int),
	}
}

// Visitor returns the hooks to hand to the DFS engine.
func (b *BridgesFinder[V, E]) Visitor() visit.Visitor[V, E] {
	return visit.Visitor[V, E]{
		OnDiscover: func(v V) {
			b.tin[v] = b.timer
			b.low[v] = b.timer
			b.timer++
		},
		OnBackEdge: func(e E) {
			u := e.Source()
			b.low[u] = min(b.low[u], b.tin[e.Target()])
		},
		OnFinishEdge: func(e E) {
			u, w := e.Source(), e.Target()
			b.low[u] = min(b.low[u], b.low[w])
			if b.low[w] > b.tin[u] && multiplicity(e) <= 1 {
				b.bridges = append(b.bridges, e)
			}
		},
	}
}

// Bridges returns the bridges in the order their subtrees finished.
func (b *BridgesFinder[V, E]) Bridges() []E {
	if len(b.bridges) == 0 {
		return []E{}
	}
	return slices.Clone(b.bridges)
}

// SortedBridges returns the bridges ordered by cmp (as slices.SortFunc).
func (b *BridgesFinder[V, E]) SortedBridges(cmp func(x, y E) int) []E {
	out := b.Bridges()
	slices.SortStableFunc(out, cmp)
	return out
}

// Reset forgets all timestamps and bridges.
func (b *BridgesFinder[V, E]) Reset() {
	clear(b.tin)
	clear(b.low)
	b.timer = 0
	b.bridges = b.bridges[:0]
}

func multiplicity(e any) int {
	if m, ok := e.(core.Multiplier); ok {
		return m.Multiplicity()
	}
	return 1
}

// Bridges returns every bridge of g, covering all components.
// Complexity: O(V + E).
func Bridges[V comparable, E core.Edge[V, E]](g core.Graph[V, E], opts ...Option) ([]E, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	finder := NewBridgesFinder[V, E]()
	opts = append(slices.Clip(opts), WithSkipParent())
	if err := Forest(g, finder.Visitor(), opts...); err != nil {
		return nil, err
	}
	return finder.Bridges(), nil
}
