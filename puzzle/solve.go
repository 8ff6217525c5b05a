package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphwalk/astar"
)

// Solvable reports whether the goal board is reachable from s.
//
// On an odd side every move preserves the parity of the inversion count,
// which is even at the goal. On an even side a vertical move flips it and
// also moves the blank one row, so inversions plus the blank's row is odd
// on every reachable board.
func Solvable(s State) bool {
	tiles := s.Tiles()
	inversions := 0
	for i := 0; i < len(tiles); i++ {
		if tiles[i] == 0 {
			continue
		}
		for j := i + 1; j < len(tiles); j++ {
			if tiles[j] != 0 && tiles[j] < tiles[i] {
				inversions++
			}
		}
	}
	if s.Side()%2 == 1 {
		return inversions%2 == 0
	}
	return (inversions+s.Blank()/s.Side())%2 == 1
}

// Solve returns a shortest move sequence from s to the goal (shortest when
// h is admissible). Unsolvable boards fail with ErrUnsolvable.
func Solve(s State, h astar.Heuristic[State, int], opts ...astar.Option) ([]Move, error) {
	if !Solvable(s) {
		return nil, fmt.Errorf("%w:\n%v", ErrUnsolvable, s)
	}
	goal := Goal(s.Side())
	moves := astar.NewGameVisitor[State, Move]()
	_, ok, err := astar.Run(Table{}, s, goal, h, moves.Visitor(), opts...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnsolvable
	}
	path, ok := moves.Path(s, goal)
	if !ok {
		return nil, ErrUnsolvable
	}
	return path, nil
}

// Letters renders moves as their direction letters.
func Letters(moves []Move) string {
	var b strings.Builder
	b.Grow(len(moves))
	for _, m := range moves {
		b.WriteByte(byte(m.Dir))
	}
	return b.String()
}
