package astar

import (
	"slices"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/visit"
)

// GameVisitor remembers, for every vertex, the last edge that improved it.
// Following those edges backwards from a finish vertex yields the sequence
// of moves that reached it.
type GameVisitor[V comparable, E core.Edge[V, E]] struct {
	moves map[V]E
}

// NewGameVisitor returns an empty GameVisitor.
func NewGameVisitor[V comparable, E core.Edge[V, E]]() *GameVisitor[V, E] {
	return &GameVisitor[V, E]{moves: make(map[V]E)}
}

// Visitor returns the hooks to hand to Run.
func (gv *GameVisitor[V, E]) Visitor() visit.Visitor[V, E] {
	return visit.Visitor[V, E]{
		OnOptimize: func(e E) { gv.moves[e.Target()] = e },
	}
}

// Reset forgets every recorded move.
func (gv *GameVisitor[V, E]) Reset() { clear(gv.moves) }

// Path returns the moves from start to finish.
//
// An empty slice and true are returned when start == finish; false when
// finish was never reached or its move chain does not lead back to start.
func (gv *GameVisitor[V, E]) Path(start, finish V) ([]E, bool) {
	path := []E{}
	cur := finish
	for cur != start {
		m, ok := gv.moves[cur]
		if !ok || len(path) > len(gv.moves) {
			return nil, false
		}
		path = append(path, m)
		cur = m.Source()
	}
	slices.Reverse(path)
	return path, true
}
