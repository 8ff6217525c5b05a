package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// walker encapsulates mutable BFS state for one run.
type walker[V comparable, E core.Edge[V, E]] struct {
	graph   core.Graph[V, E]
	visitor visit.Visitor[V, E]
	opts    Options
	ctx     context.Context
	colors  []visit.Color // indexed by graph.Index
	depth   []int
	queue   []V
	head    int
}

// Run performs breadth-first search on g from start, reporting to v.
// See the package documentation for the exact hook order.
func Run[V comparable, E core.Edge[V, E]](g core.Graph[V, E], start V, v visit.Visitor[V, E], opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	vertices := g.Vertices()
	n := len(vertices)
	w := &walker[V, E]{
		graph:   g,
		visitor: v,
		opts:    o,
		ctx:     o.Ctx,
		colors:  make([]visit.Color, n),
		depth:   make([]int, n),
		queue:   make([]V, 0, n),
	}
	for _, u := range vertices {
		w.visitor.Initialize(u)
	}

	si, ok := g.Index(start)
	if !ok {
		return nil
	}
	w.colors[si] = visit.Gray
	w.visitor.Discover(start)
	w.queue = append(w.queue, start)

	return w.loop()
}

// loop processes the queue until it empties, an error occurs, or the
// context is cancelled.
func (w *walker[V, E]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[w.head]
		w.head++
		ci, _ := w.graph.Index(cur)
		w.visitor.ExamineVertex(cur)

		if w.opts.MaxDepth == 0 || w.depth[ci] < w.opts.MaxDepth {
			if err := w.expand(cur, ci); err != nil {
				return err
			}
		}

		w.colors[ci] = visit.Black
		w.visitor.Finish(cur)
	}
	return nil
}

// expand classifies every edge leaving cur and enqueues White targets.
func (w *walker[V, E]) expand(cur V, ci int) error {
	it, err := w.graph.IterateNeighbours(cur, nil)
	if err != nil {
		return fmt.Errorf("bfs: neighbours of %v: %w", cur, err)
	}
	for it.Next() {
		e := it.Edge()
		next := it.Vertex()
		w.visitor.ExamineEdge(e)

		ni, ok := w.graph.Index(next)
		if !ok {
			return fmt.Errorf("bfs: edge target %v: %w", next, core.ErrVertexNotFound)
		}
		switch w.colors[ni] {
		case visit.White:
			w.visitor.TreeEdge(e)
			w.colors[ni] = visit.Gray
			w.depth[ni] = w.depth[ci] + 1
			w.visitor.Discover(next)
			w.queue = append(w.queue, next)
		case visit.Gray:
			w.visitor.NonTreeEdge(e)
			w.visitor.GrayTarget(next)
		default:
			w.visitor.NonTreeEdge(e)
			w.visitor.BlackTarget(next)
		}
	}
	return nil
}

// ShortestPath returns the fewest-hop path from `from` to `to`, or an empty
// slice when `to` is unreachable. An absent `from` yields an empty path.
func ShortestPath[V comparable, E core.Edge[V, E]](g core.Graph[V, E], from, to V, opts ...Option) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.Index(from); !ok {
		return []V{}, nil
	}
	parents := visit.NewParentVisitor[V, E]()
	if err := Run(g, from, parents.Visitor(), opts...); err != nil {
		return nil, err
	}
	return parents.Path(from, to), nil
}

// Layers groups the vertices reachable from start by hop distance.
// Layers()[0] is [start]; an absent start yields nil.
func Layers[V comparable, E core.Edge[V, E]](g core.Graph[V, E], start V, opts ...Option) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	level := make(map[V]int)
	var layers [][]V
	place := func(v V, d int) {
		level[v] = d
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], v)
	}
	hooks := visit.Visitor[V, E]{
		OnTreeEdge: func(e E) { place(e.Target(), level[e.Source()]+1) },
	}
	if _, ok := g.Index(start); ok {
		place(start, 0)
	}
	if err := Run(g, start, hooks, opts...); err != nil {
		return nil, err
	}
	return layers, nil
}
