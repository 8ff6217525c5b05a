// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - A view preserves the order of the graph it wraps.

package core

// FilteredView presents a graph whose edges are restricted to those accepted
// by a predicate. Nothing is copied: every query filters the wrapped graph
// on the fly, so a view costs O(1) to build.
//
// Vertices are never hidden; a vertex whose edges are all rejected simply
// has no neighbours.
type FilteredView[V comparable, E Edge[V, E]] struct {
	g    Graph[V, E]
	keep func(E) bool
}

// Filter wraps g so that only edges accepted by keep are visible.
// A nil keep returns a view identical to g.
func Filter[V comparable, E Edge[V, E]](g Graph[V, E], keep func(E) bool) *FilteredView[V, E] {
	return &FilteredView[V, E]{g: g, keep: keep}
}

func (f *FilteredView[V, E]) accept(e E) bool { return f.keep == nil || f.keep(e) }

func (f *FilteredView[V, E]) VerticesCount() int    { return f.g.VerticesCount() }
func (f *FilteredView[V, E]) Vertices() []V         { return f.g.Vertices() }
func (f *FilteredView[V, E]) Index(v V) (int, bool) { return f.g.Index(v) }
func (f *FilteredView[V, E]) Directed() bool        { return f.g.Directed() }

// EdgesCount counts accepted adjacency entries, halved for undirected graphs.
// For undirected graphs the predicate should be symmetric (accept e iff it
// accepts e.Reverse()), otherwise the count is rounded down.
// Complexity: O(V + E).
func (f *FilteredView[V, E]) EdgesCount() int {
	total, loops := 0, 0
	for _, v := range f.g.Vertices() {
		out, _ := f.OutEdges(v)
		for _, e := range out {
			total++
			if e.Source() == e.Target() {
				loops++
			}
		}
	}
	if f.g.Directed() {
		return total
	}
	return (total-loops)/2 + loops
}

// OutEdges returns v's accepted edges.
func (f *FilteredView[V, E]) OutEdges(v V) ([]E, error) {
	all, err := f.g.OutEdges(v)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, e := range all {
		if f.accept(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Neighbours returns the targets of v's accepted edges.
func (f *FilteredView[V, E]) Neighbours(v V) ([]V, error) {
	it, err := f.IterateNeighbours(v, nil)
	if err != nil {
		return nil, err
	}
	out := it.Collect()
	if out == nil {
		out = []V{}
	}
	return out, nil
}

// HasEdge reports whether u→v exists and is accepted.
func (f *FilteredView[V, E]) HasEdge(u, v V) bool {
	_, ok := f.Edge(u, v)
	return ok
}

// Edge returns u→v when it exists and is accepted.
func (f *FilteredView[V, E]) Edge(u, v V) (E, bool) {
	it, err := f.IterateNeighbours(u, func(e E) bool { return e.Target() == v })
	if err != nil || !it.Next() {
		var zero E
		return zero, false
	}
	return it.Edge(), true
}

// IterateNeighbours composes keep with the view's predicate.
func (f *FilteredView[V, E]) IterateNeighbours(v V, keep func(E) bool) (*Neighbors[V, E], error) {
	both := f.keep
	if keep != nil {
		both = func(e E) bool { return f.accept(e) && keep(e) }
	}
	return f.g.IterateNeighbours(v, both)
}
