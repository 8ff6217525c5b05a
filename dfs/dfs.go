package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// frame is one entry of the explicit DFS stack.
type frame[V comparable, E core.Edge[V, E]] struct {
	v       V
	vi      int
	depth   int
	it      *core.Neighbors[V, E] // nil when the depth limit forbids expansion
	via     E                     // tree edge that led here
	hasVia  bool
	skipped bool // parent entry already skipped
}

// Walker holds the colouring shared by successive Visit calls.
type Walker[V comparable, E core.Edge[V, E]] struct {
	graph   core.Graph[V, E]
	visitor visit.Visitor[V, E]
	opts    Options
	colors  []visit.Color
	stack   []frame[V, E]
}

// NewWalker prepares a traversal: every vertex becomes White and receives
// OnInitialize.
func NewWalker[V comparable, E core.Edge[V, E]](g core.Graph[V, E], v visit.Visitor[V, E], opts ...Option) (*Walker[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	vertices := g.Vertices()
	w := &Walker[V, E]{
		graph:   g,
		visitor: v,
		opts:    o,
		colors:  make([]visit.Color, len(vertices)),
	}
	for _, u := range vertices {
		w.visitor.Initialize(u)
	}
	return w, nil
}

// Color reports the current colour of v (White for unknown vertices).
func (w *Walker[V, E]) Color(v V) visit.Color {
	if i, ok := w.graph.Index(v); ok {
		return w.colors[i]
	}
	return visit.White
}

// Visit explores everything reachable from root that is still White.
// A root that is absent or already discovered is a no-op.
func (w *Walker[V, E]) Visit(root V) error {
	ri, ok := w.graph.Index(root)
	if !ok || w.colors[ri] != visit.White {
		return nil
	}
	var none E
	if err := w.enter(root, ri, 0, none, false); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		fr := &w.stack[top]
		if fr.it == nil || !fr.it.Next() {
			w.leave()
			continue
		}

		e := fr.it.Edge()
		next := fr.it.Vertex()
		if w.opts.SkipParent && fr.hasVia && !fr.skipped && next == fr.via.Source() {
			fr.skipped = true
			continue
		}
		w.visitor.ExamineEdge(e)

		ni, ok := w.graph.Index(next)
		if !ok {
			return fmt.Errorf("dfs: edge target %v: %w", next, core.ErrVertexNotFound)
		}
		switch w.colors[ni] {
		case visit.White:
			w.visitor.TreeEdge(e)
			// fr may be invalidated by the push below
			if err := w.enter(next, ni, fr.depth+1, e, true); err != nil {
				return err
			}
		case visit.Gray:
			w.visitor.BackEdge(e)
			w.visitor.GrayTarget(next)
		default:
			w.visitor.BackEdge(e)
			w.visitor.BlackTarget(next)
		}
	}
	return nil
}

// enter performs the pre-order half of a visit and pushes the frame.
func (w *Walker[V, E]) enter(v V, vi, depth int, via E, hasVia bool) error {
	select {
	case <-w.opts.Ctx.Done():
		w.stack = w.stack[:0]
		return w.opts.Ctx.Err()
	default:
	}

	w.visitor.Discover(v)
	w.colors[vi] = visit.Gray
	w.visitor.ExamineVertex(v)

	fr := frame[V, E]{v: v, vi: vi, depth: depth, via: via, hasVia: hasVia}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		it, err := w.graph.IterateNeighbours(v, nil)
		if err != nil {
			w.stack = w.stack[:0]
			return fmt.Errorf("dfs: neighbours of %v: %w", v, err)
		}
		fr.it = it
	}
	w.stack = append(w.stack, fr)
	return nil
}

// leave performs the post-order half of the top frame and pops it.
func (w *Walker[V, E]) leave() {
	fr := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.colors[fr.vi] = visit.Black
	w.visitor.Finish(fr.v)
	if fr.hasVia {
		w.visitor.FinishEdge(fr.via)
	}
}

// Run performs depth-first search on g from start only.
func Run[V comparable, E core.Edge[V, E]](g core.Graph[V, E], start V, v visit.Visitor[V, E], opts ...Option) error {
	w, err := NewWalker(g, v, opts...)
	if err != nil {
		return err
	}
	return w.Visit(start)
}

// Forest performs depth-first search from every White vertex of g, in
// g.Vertices() order.
func Forest[V comparable, E core.Edge[V, E]](g core.Graph[V, E], v visit.Visitor[V, E], opts ...Option) error {
	w, err := NewWalker(g, v, opts...)
	if err != nil {
		return err
	}
	for _, root := range g.Vertices() {
		if err = w.Visit(root); err != nil {
			return err
		}
	}
	return nil
}
