package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// indexer is implemented by graphs that know their vertex set.
type indexer[V comparable] interface {
	Index(v V) (int, bool)
}

// Run searches for the cheapest path from start to goal in g.
//
// It returns the goal distance and true when the goal was reached, or the
// zero W and false when the reachable part of g was exhausted first.
// Errors come from the graph, the context, a negative edge or the
// expansion limit. When g can look up vertices and start is not one of
// them, Run returns the zero W, false and nil without firing any hook.
func Run[V comparable, W core.Weight, E core.WeightedEdge[V, W, E]](
	g core.Adjacency[V, E], start, goal V, h Heuristic[V, W], v visit.Visitor[V, E], opts ...Option,
) (W, bool, error) {
	var zero W
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return zero, false, cfg.err
	}
	if g == nil {
		return zero, false, ErrNilGraph
	}
	if h == nil {
		return zero, false, ErrNilHeuristic
	}
	if ix, ok := g.(indexer[V]); ok {
		if _, known := ix.Index(start); !known {
			return zero, false, nil
		}
	}

	s := &search[V, W, E]{
		g:       g,
		h:       h,
		goal:    goal,
		opts:    cfg,
		visitor: v,
		dist:    map[V]W{start: 0},
		closed:  make(map[V]struct{}),
	}
	s.visitor.Start(start)
	s.push(start, 0)
	return s.loop()
}

// search holds the mutable state of one A* run.
type search[V comparable, W core.Weight, E core.WeightedEdge[V, W, E]] struct {
	g        core.Adjacency[V, E]
	h        Heuristic[V, W]
	goal     V
	opts     Options
	visitor  visit.Visitor[V, E]
	dist     map[V]W
	closed   map[V]struct{}
	open     frontier[V, W]
	seq      uint64
	expanded int
}

func (s *search[V, W, E]) push(v V, d W) {
	heap.Push(&s.open, entry[V, W]{v: v, g: d, f: d + s.h(v), seq: s.seq})
	s.seq++
}

func (s *search[V, W, E]) loop() (W, bool, error) {
	var zero W
	for s.open.Len() > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return zero, false, s.opts.Ctx.Err()
		default:
		}

		cur := heap.Pop(&s.open).(entry[V, W])
		if _, done := s.closed[cur.v]; done || cur.g > s.dist[cur.v] {
			continue
		}
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			return zero, false, fmt.Errorf("%w: %d vertices", ErrExpansionLimit, s.expanded)
		}
		s.expanded++
		s.visitor.ExamineVertex(cur.v)
		s.closed[cur.v] = struct{}{}
		if cur.v == s.goal {
			return s.dist[cur.v], true, nil
		}
		if err := s.expand(cur.v); err != nil {
			return zero, false, err
		}
	}
	return zero, false, nil
}

func (s *search[V, W, E]) expand(u V) error {
	edges, err := s.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("astar: failed to get edges of %v: %w", u, err)
	}
	for _, e := range edges {
		s.visitor.ExamineEdge(e)
		if e.Cost() < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.Target(), e.Cost())
		}
		next := e.Target()
		score := s.dist[u] + e.Cost()
		if old, seen := s.dist[next]; seen && score >= old {
			continue
		}
		// a strictly better route re-opens a closed vertex
		delete(s.closed, next)
		s.dist[next] = score
		s.visitor.Optimize(e)
		s.push(next, score)
	}
	return nil
}

// entry is one frontier item; g is the distance it was pushed with.
type entry[V comparable, W core.Weight] struct {
	v   V
	g   W
	f   W
	seq uint64
}

// frontier is a min-heap on f, FIFO among equal f.
type frontier[V comparable, W core.Weight] []entry[V, W]

func (q frontier[V, W]) Len() int { return len(q) }
func (q frontier[V, W]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q frontier[V, W]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *frontier[V, W]) Push(x any)   { *q = append(*q, x.(entry[V, W])) }
func (q *frontier[V, W]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
