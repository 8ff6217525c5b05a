// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: Adjacency-"matrix" storage strategy backed by hash rows.
// Determinism:
//   - Row entries keep first-insertion order of their targets, so neighbour
//     order matches ListGraph for simple edge lists.

package core

// matrixRow holds the cells of one vertex: target → edge, plus target order.
type matrixRow[V comparable, E any] struct {
	order []V
	cells map[V]E
}

// put stores e under its target. A second edge to the same target is merged
// through Merger when E supports it, otherwise it replaces the first.
func (r *matrixRow[V, E]) put(target V, e E) {
	if r.cells == nil {
		r.cells = make(map[V]E)
	}
	if old, ok := r.cells[target]; ok {
		if m, ok := any(old).(Merger[E]); ok {
			r.cells[target] = m.Merge(e)
			return
		}
		r.cells[target] = e
		return
	}
	r.order = append(r.order, target)
	r.cells[target] = e
}

// MatrixGraph stores one hash row per vertex, giving O(1) expected HasEdge
// and Edge lookups. Parallel edges between the same ordered pair occupy a
// single cell.
type MatrixGraph[V comparable, E Edge[V, E]] struct {
	registry[V]
	directed bool
	rows     []matrixRow[V, E]
	loops    int
}

// NewMatrixGraph builds a hash-matrix graph from vertices and edges.
//
// Implementation:
//   - Stage 1: Register vertices in the given order (duplicates collapse).
//   - Stage 2: For each edge e, set cell[e.Source()][e.Target()] = e and, unless
//     directed, cell[e.Target()][e.Source()] = e.Reverse().
//
// Complexity:
//   - Time O(V + E) expected, Space O(V + E).
func NewMatrixGraph[V comparable, E Edge[V, E]](vertices []V, edges []E, opts ...Option) *MatrixGraph[V, E] {
	o := buildOptions(opts)
	g := &MatrixGraph[V, E]{
		registry: newRegistry[V](len(vertices)),
		directed: o.directed,
		rows:     make([]matrixRow[V, E], 0, len(vertices)),
	}
	for _, v := range vertices {
		g.addVertex(v)
	}
	for _, e := range edges {
		g.addEdge(e)
	}
	return g
}

func (g *MatrixGraph[V, E]) addVertex(v V) int {
	i, fresh := g.add(v)
	if fresh {
		g.rows = append(g.rows, matrixRow[V, E]{})
	}
	return i
}

func (g *MatrixGraph[V, E]) addEdge(e E) {
	from := g.addVertex(e.Source())
	to := g.addVertex(e.Target())
	if from == to && !g.directed {
		if _, seen := g.rows[from].cells[e.Target()]; !seen {
			g.loops++
		}
	}
	g.rows[from].put(e.Target(), e)
	if g.directed || from == to {
		return
	}
	g.rows[to].put(e.Source(), e.Reverse())
}

// Directed reports whether edges were stored one-way.
func (g *MatrixGraph[V, E]) Directed() bool { return g.directed }

// EdgesCount returns the number of occupied cells, halved for undirected
// graphs. Complexity: O(V).
func (g *MatrixGraph[V, E]) EdgesCount() int {
	total := 0
	for i := range g.rows {
		total += len(g.rows[i].order)
	}
	if g.directed {
		return total
	}
	return (total-g.loops)/2 + g.loops
}

// Neighbours returns the occupied columns of v's row.
func (g *MatrixGraph[V, E]) Neighbours(v V) ([]V, error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	out := make([]V, len(g.rows[i].order))
	copy(out, g.rows[i].order)
	return out, nil
}

// OutEdges returns v's cells in column order.
func (g *MatrixGraph[V, E]) OutEdges(v V) ([]E, error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	row := &g.rows[i]
	out := make([]E, len(row.order))
	for k, t := range row.order {
		out[k] = row.cells[t]
	}
	return out, nil
}

// HasEdge reports whether cell (u,v) is occupied. O(1) expected.
func (g *MatrixGraph[V, E]) HasEdge(u, v V) bool {
	_, ok := g.Edge(u, v)
	return ok
}

// Edge returns cell (u,v). O(1) expected.
func (g *MatrixGraph[V, E]) Edge(u, v V) (E, bool) {
	i, ok := g.index[u]
	if !ok {
		var zero E
		return zero, false
	}
	e, ok := g.rows[i].cells[v]
	return e, ok
}

// IterateNeighbours returns a lazy cursor over v's cells accepted by keep.
func (g *MatrixGraph[V, E]) IterateNeighbours(v V, keep func(E) bool) (*Neighbors[V, E], error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	row := &g.rows[i]
	return newNeighbors[V, E](len(row.order), func(k int) E { return row.cells[row.order[k]] }, keep), nil
}
