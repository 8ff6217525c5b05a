package core

import "iter"

// Neighbors is a lazy, filtered cursor over the adjacency entries of one
// vertex. It never copies the underlying storage and never mutates the graph.
//
// A Neighbors value is single-use: once Next returns false it stays
// exhausted. Call IterateNeighbours again to restart from the beginning.
//
//	it, err := g.IterateNeighbours(v, func(e core.Pair[int]) bool { return e.Second != skip })
//	for it.Next() {
//		use(it.Vertex(), it.Edge())
//	}
type Neighbors[V comparable, E Edge[V, E]] struct {
	at   func(i int) E // i-th raw adjacency entry
	n    int           // number of raw entries
	i    int           // next raw position to inspect
	keep func(E) bool  // nil accepts everything
	cur  E
}

func newNeighbors[V comparable, E Edge[V, E]](n int, at func(int) E, keep func(E) bool) *Neighbors[V, E] {
	return &Neighbors[V, E]{at: at, n: n, keep: keep}
}

// Next advances to the next entry accepted by the filter.
func (it *Neighbors[V, E]) Next() bool {
	for it.i < it.n {
		e := it.at(it.i)
		it.i++
		if it.keep == nil || it.keep(e) {
			it.cur = e
			return true
		}
	}
	var zero E
	it.cur = zero
	return false
}

// Vertex returns the neighbour at the current position.
func (it *Neighbors[V, E]) Vertex() V { return it.cur.Target() }

// Edge returns the connecting edge at the current position; its Source() is
// the vertex being iterated.
func (it *Neighbors[V, E]) Edge() E { return it.cur }

// All adapts the cursor to a range-over-func sequence. Ranging consumes the
// cursor.
func (it *Neighbors[V, E]) All() iter.Seq2[V, E] {
	return func(yield func(V, E) bool) {
		for it.Next() {
			if !yield(it.Vertex(), it.Edge()) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice of neighbour vertices.
func (it *Neighbors[V, E]) Collect() []V {
	var out []V
	for it.Next() {
		out = append(out, it.Vertex())
	}
	return out
}
