package visit

import (
	"slices"

	"github.com/katalvlaran/graphwalk/core"
)

// ParentVisitor records, for every tree edge (and every improving edge in a
// weighted search), the edge's source as the parent of its target. It also
// remembers which vertices the traversal reached, roots included.
//
// Create one per run, or call Reset between runs.
type ParentVisitor[V comparable, E core.Edge[V, E]] struct {
	parents map[V]V
	reached map[V]struct{}
}

// NewParentVisitor returns an empty ParentVisitor.
func NewParentVisitor[V comparable, E core.Edge[V, E]]() *ParentVisitor[V, E] {
	return &ParentVisitor[V, E]{parents: make(map[V]V), reached: make(map[V]struct{})}
}

// Visitor returns the hooks to hand to a traversal engine.
func (p *ParentVisitor[V, E]) Visitor() Visitor[V, E] {
	mark := func(v V) { p.reached[v] = struct{}{} }
	record := func(e E) {
		p.parents[e.Target()] = e.Source()
		mark(e.Target())
	}
	return Visitor[V, E]{
		OnStart:    mark,
		OnDiscover: mark,
		OnTreeEdge: record,
		OnOptimize: record,
	}
}

// Reset forgets every recorded parent and reached vertex.
func (p *ParentVisitor[V, E]) Reset() {
	clear(p.parents)
	clear(p.reached)
}

// Reached reports whether the traversal started at, discovered or
// improved v.
func (p *ParentVisitor[V, E]) Reached(v V) bool {
	_, ok := p.reached[v]
	return ok
}

// Parent returns the recorded parent of v.
func (p *ParentVisitor[V, E]) Parent(v V) (V, bool) {
	u, ok := p.parents[v]
	return u, ok
}

// Path returns the vertices from `from` to `to` along recorded parents.
//
// Returns [from] when from == to and the traversal reached it, and an empty
// slice when `to` was never reached or its parent chain does not lead back
// to `from`.
// Complexity: O(len(path)).
func (p *ParentVisitor[V, E]) Path(from, to V) []V {
	if from == to {
		if !p.Reached(from) {
			return []V{}
		}
		return []V{from}
	}
	if _, ok := p.parents[to]; !ok {
		return []V{}
	}
	path := []V{to}
	cur := to
	// a parent chain is acyclic and no longer than the number of entries
	for steps := 0; cur != from; steps++ {
		prev, ok := p.parents[cur]
		if !ok || steps > len(p.parents) {
			return []V{}
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}

// Edges returns the tree edges leading from the root of `to`'s tree down to
// `to`, looked up in g.
func (p *ParentVisitor[V, E]) Edges(g core.Graph[V, E], to V) []E {
	var out []E
	cur := to
	for steps := 0; steps <= len(p.parents); steps++ {
		prev, ok := p.parents[cur]
		if !ok {
			break
		}
		if e, ok := g.Edge(prev, cur); ok {
			out = append(out, e)
		}
		cur = prev
	}
	slices.Reverse(out)
	return out
}
