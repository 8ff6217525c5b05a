package dijkstra

import (
	"slices"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// DistanceVisitor records distances and shortest-path parents from the
// OnStart and OnOptimize hooks of a weighted search.
//
// Create one per run, or call Reset between runs.
type DistanceVisitor[V comparable, W core.Weight, E core.WeightedEdge[V, W, E]] struct {
	start   V
	started bool
	dist    map[V]W
	parents map[V]V
}

// NewDistanceVisitor returns an empty DistanceVisitor.
func NewDistanceVisitor[V comparable, W core.Weight, E core.WeightedEdge[V, W, E]]() *DistanceVisitor[V, W, E] {
	return &DistanceVisitor[V, W, E]{
		dist:    make(map[V]W),
		parents: make(map[V]V),
	}
}

// Visitor returns the hooks to hand to Run (or to astar.Run).
func (d *DistanceVisitor[V, W, E]) Visitor() visit.Visitor[V, E] {
	return visit.Visitor[V, E]{
		OnStart: func(v V) {
			d.start, d.started = v, true
			d.dist[v] = 0
		},
		OnOptimize: func(e E) {
			d.parents[e.Target()] = e.Source()
			d.dist[e.Target()] = d.dist[e.Source()] + e.Cost()
		},
	}
}

// Reset forgets every recorded distance and parent.
func (d *DistanceVisitor[V, W, E]) Reset() {
	var zero V
	d.start, d.started = zero, false
	clear(d.dist)
	clear(d.parents)
}

// Distance returns the recorded distance of v and whether v was reached.
func (d *DistanceVisitor[V, W, E]) Distance(v V) (W, bool) {
	w, ok := d.dist[v]
	return w, ok
}

// Parent returns the predecessor of v on its shortest path.
func (d *DistanceVisitor[V, W, E]) Parent(v V) (V, bool) {
	u, ok := d.parents[v]
	return u, ok
}

// Path returns the vertices from the start vertex to `to`, or an empty slice
// when `to` was not reached.
func (d *DistanceVisitor[V, W, E]) Path(to V) []V {
	if !d.started {
		return []V{}
	}
	if _, ok := d.dist[to]; !ok {
		return []V{}
	}
	path := []V{to}
	cur := to
	for steps := 0; cur != d.start; steps++ {
		prev, ok := d.parents[cur]
		if !ok || steps > len(d.parents) {
			return []V{}
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}
