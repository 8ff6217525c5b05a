package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// lister is implemented by graphs that can enumerate their vertices, which
// lets Run scan every edge for negative costs before starting.
type lister[V comparable] interface {
	Vertices() []V
}

// indexer is implemented by graphs that know their vertex set, which lets
// Run treat an unknown start as an empty search.
type indexer[V comparable] interface {
	Index(v V) (int, bool)
}

// Run computes shortest distances from start to every vertex reachable in g
// and returns them. Unreachable vertices are absent from the map.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g must be non-nil (ErrNilGraph).
//  3. If g lists its vertices, no edge may have a negative cost
//     (ErrNegativeWeight). Implicit graphs are checked during relaxation.
//
// If g can look up vertices (core.Graph) and start is not one of them, Run
// returns an empty map and nil without firing any hook. On an implicit
// graph an unknown start surfaces as the error its OutEdges reports.
//
// The W type argument usually has to be spelled out, as in
// Run[int, int](g, 0, v).
func Run[V comparable, W core.Weight, E core.WeightedEdge[V, W, E]](g core.Adjacency[V, E], start V, v visit.Visitor[V, E], opts ...Option) (map[V]W, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if l, ok := g.(lister[V]); ok {
		if err := scanNegative[V, W](g, l.Vertices()); err != nil {
			return nil, err
		}
	}

	if ix, ok := g.(indexer[V]); ok {
		if _, known := ix.Index(start); !known {
			return map[V]W{}, nil
		}
	}

	r := &runner[V, W, E]{
		g:       g,
		options: cfg,
		visitor: v,
		dist:    map[V]W{start: 0},
		settled: make(map[V]struct{}),
	}
	r.visitor.Start(start)
	heap.Push(&r.pq, nodeItem[V, W]{id: start, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}
	return r.dist, nil
}

// scanNegative fails fast on the first negative edge.
func scanNegative[V comparable, W core.Weight, E core.WeightedEdge[V, W, E]](g core.Adjacency[V, E], vertices []V) error {
	for _, u := range vertices {
		edges, err := g.OutEdges(u)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if e.Cost() < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.Source(), e.Target(), e.Cost())
			}
		}
	}
	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, W core.Weight, E core.WeightedEdge[V, W, E]] struct {
	g       core.Adjacency[V, E]
	options Options
	visitor visit.Visitor[V, E]
	dist    map[V]W        // best-known distance; final once settled
	settled map[V]struct{} // vertices whose distance is final
	pq      nodePQ[V, W]   // lazy min-heap
}

// process is the core loop. It stops when the heap empties, the closest
// candidate exceeds MaxDistance, or the context is cancelled.
func (r *runner[V, W, E]) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(nodeItem[V, W])
		if _, done := r.settled[item.id]; done {
			continue
		}
		if float64(item.dist) > r.options.MaxDistance {
			break
		}
		r.settled[item.id] = struct{}{}
		r.visitor.ExamineVertex(item.id)

		if err := r.relax(item.id); err != nil {
			return err
		}
	}
	r.trim()
	return nil
}

// relax examines each edge leaving the settled vertex u.
func (r *runner[V, W, E]) relax(u V) error {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %v: %w", u, err)
	}
	base := r.dist[u]
	for _, e := range edges {
		r.visitor.ExamineEdge(e)

		w := e.Cost()
		if float64(w) >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.Target(), w)
		}

		next := e.Target()
		cand := base + w
		if old, seen := r.dist[next]; seen && cand >= old {
			continue
		}
		r.dist[next] = cand
		heap.Push(&r.pq, nodeItem[V, W]{id: next, dist: cand})
		r.visitor.Optimize(e)
	}
	return nil
}

// trim drops tentative distances beyond MaxDistance so the result only
// reports settled vertices.
func (r *runner[V, W, E]) trim() {
	for v := range r.dist {
		if _, ok := r.settled[v]; !ok && float64(r.dist[v]) > r.options.MaxDistance {
			delete(r.dist, v)
		}
	}
}

// nodeItem represents a vertex and its tentative distance from the start.
type nodeItem[V comparable, W core.Weight] struct {
	id   V
	dist W
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ[V comparable, W core.Weight] []nodeItem[V, W]

func (pq nodePQ[V, W]) Len() int           { return len(pq) }
func (pq nodePQ[V, W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V, W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ[V, W]) Push(x any) { *pq = append(*pq, x.(nodeItem[V, W])) }

// Pop is called by heap.Pop.
func (pq *nodePQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
