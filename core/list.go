// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: Adjacency-list storage strategy.
// Determinism:
//   - Vertices() follows registration order.
//   - Neighbours()/OutEdges()/IterateNeighbours() follow edge insertion order.

package core

// ListGraph stores, for every vertex, the slice of edges leaving it.
//
// Adjacency slices are indexed by the dense vertex index, so per-vertex
// lookups after Index() never touch a map.
type ListGraph[V comparable, E Edge[V, E]] struct {
	registry[V]
	directed bool
	adj      [][]E // adj[i] = edges with Source() == order[i]
	loops    int   // undirected self-loops, stored once
}

// NewListGraph builds an adjacency-list graph from vertices and edges.
//
// Implementation:
//   - Stage 1: Register vertices in the given order (duplicates collapse).
//   - Stage 2: For each edge e, register any unseen endpoint, append e under
//     e.Source() and, unless directed, append e.Reverse() under e.Target().
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func NewListGraph[V comparable, E Edge[V, E]](vertices []V, edges []E, opts ...Option) *ListGraph[V, E] {
	o := buildOptions(opts)
	g := &ListGraph[V, E]{
		registry: newRegistry[V](len(vertices)),
		directed: o.directed,
		adj:      make([][]E, 0, len(vertices)),
	}
	for _, v := range vertices {
		g.addVertex(v)
	}
	for _, e := range edges {
		g.addEdge(e)
	}
	return g
}

func (g *ListGraph[V, E]) addVertex(v V) int {
	i, fresh := g.add(v)
	if fresh {
		g.adj = append(g.adj, nil)
	}
	return i
}

func (g *ListGraph[V, E]) addEdge(e E) {
	from := g.addVertex(e.Source())
	to := g.addVertex(e.Target())
	g.adj[from] = append(g.adj[from], e)
	if g.directed {
		return
	}
	if from == to {
		g.loops++
		return
	}
	// reorient so the entry under Target() starts at Target()
	g.adj[to] = append(g.adj[to], e.Reverse())
}

// Directed reports whether edges were stored one-way.
func (g *ListGraph[V, E]) Directed() bool { return g.directed }

// EdgesCount returns the number of distinct edges.
// Complexity: O(V).
func (g *ListGraph[V, E]) EdgesCount() int {
	total := 0
	for _, row := range g.adj {
		total += len(row)
	}
	if g.directed {
		return total
	}
	return (total-g.loops)/2 + g.loops
}

// Neighbours returns the targets of v's edges in insertion order.
func (g *ListGraph[V, E]) Neighbours(v V) ([]V, error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	out := make([]V, len(g.adj[i]))
	for k, e := range g.adj[i] {
		out[k] = e.Target()
	}
	return out, nil
}

// OutEdges returns a copy of v's adjacency entries.
func (g *ListGraph[V, E]) OutEdges(v V) ([]E, error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	out := make([]E, len(g.adj[i]))
	copy(out, g.adj[i])
	return out, nil
}

// HasEdge reports whether an edge u→v is stored. O(deg(u)).
func (g *ListGraph[V, E]) HasEdge(u, v V) bool {
	_, ok := g.Edge(u, v)
	return ok
}

// Edge returns the first stored u→v edge. O(deg(u)).
func (g *ListGraph[V, E]) Edge(u, v V) (E, bool) {
	var zero E
	i, ok := g.index[u]
	if !ok {
		return zero, false
	}
	for _, e := range g.adj[i] {
		if e.Target() == v {
			return e, true
		}
	}
	return zero, false
}

// IterateNeighbours returns a lazy cursor over v's edges accepted by keep.
func (g *ListGraph[V, E]) IterateNeighbours(v V, keep func(E) bool) (*Neighbors[V, E], error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	row := g.adj[i]
	return newNeighbors[V, E](len(row), func(k int) E { return row[k] }, keep), nil
}

// Transpose returns a directed graph with every edge reversed.
// An undirected graph is its own transpose, so a copy is returned.
// Complexity: O(V + E).
func (g *ListGraph[V, E]) Transpose() *ListGraph[V, E] {
	t := &ListGraph[V, E]{
		registry: newRegistry[V](len(g.order)),
		directed: g.directed,
		adj:      make([][]E, 0, len(g.order)),
		loops:    g.loops,
	}
	for _, v := range g.order {
		t.addVertex(v)
	}
	for i, row := range g.adj {
		for _, e := range row {
			if g.directed {
				to := t.index[e.Target()]
				t.adj[to] = append(t.adj[to], e.Reverse())
				continue
			}
			t.adj[i] = append(t.adj[i], e)
		}
	}
	return t
}
