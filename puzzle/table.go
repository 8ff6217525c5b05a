package puzzle

import "github.com/katalvlaran/graphwalk/core"

// Move is one slide of the blank. It is a core.WeightedEdge of cost 1.
type Move struct {
	From State
	To   State
	Dir  Direction
}

func (m Move) Source() State { return m.From }
func (m Move) Target() State { return m.To }
func (m Move) Cost() int     { return 1 }

// Reverse returns the move that undoes m.
func (m Move) Reverse() Move {
	return Move{From: m.To, To: m.From, Dir: m.Dir.Opposite()}
}

// Table is the implicit graph of all boards; every State is a vertex.
type Table struct{}

// OutEdges returns the legal moves from s.
func (Table) OutEdges(s State) ([]Move, error) { return s.Moves(), nil }

var (
	_ core.WeightedEdge[State, int, Move] = Move{}
	_ core.Adjacency[State, Move]         = Table{}
)
