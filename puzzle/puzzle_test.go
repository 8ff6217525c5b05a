package puzzle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphwalk/astar"
	"github.com/katalvlaran/graphwalk/puzzle"
)

func board(t *testing.T, side int, tiles ...int) puzzle.State {
	t.Helper()
	s, err := puzzle.New(side, tiles)
	require.NoError(t, err)
	return s
}

// StateSuite covers board construction and moves.
type StateSuite struct {
	suite.Suite
}

func (s *StateSuite) TestNewValidation() {
	_, err := puzzle.New(5, make([]int, 25))
	require.ErrorIs(s.T(), err, puzzle.ErrSize)
	_, err = puzzle.New(1, []int{0})
	require.ErrorIs(s.T(), err, puzzle.ErrSize)
	_, err = puzzle.New(2, []int{0, 1, 2})
	require.ErrorIs(s.T(), err, puzzle.ErrInvalidBoard)
	_, err = puzzle.New(2, []int{0, 1, 1, 2})
	require.ErrorIs(s.T(), err, puzzle.ErrInvalidBoard)
	_, err = puzzle.New(2, []int{0, 1, 2, 4})
	require.ErrorIs(s.T(), err, puzzle.ErrInvalidBoard)
}

func (s *StateSuite) TestGoalAndAccessors() {
	g := puzzle.Goal(3)
	require.Equal(s.T(), "1 2 3\n4 5 6\n7 8 0", g.String())
	require.Equal(s.T(), 3, g.Side())
	require.Equal(s.T(), 9, g.Cells())
	require.Equal(s.T(), 8, g.Blank())
	require.Equal(s.T(), 4, g.Find(5))
	require.Equal(s.T(), -1, g.Find(9))

	big := puzzle.Goal(4)
	require.Equal(s.T(), 15, big.At(14))
	require.Equal(s.T(), 0, big.At(15))
}

func (s *StateSuite) TestApply() {
	g := puzzle.Goal(3)
	_, ok := g.Apply(puzzle.Down)
	require.False(s.T(), ok)
	_, ok = g.Apply(puzzle.Right)
	require.False(s.T(), ok)

	up, ok := g.Apply(puzzle.Up)
	require.True(s.T(), ok)
	require.Equal(s.T(), []int{1, 2, 3, 4, 5, 0, 7, 8, 6}, up.Tiles())

	left, ok := g.Apply(puzzle.Left)
	require.True(s.T(), ok)
	require.Equal(s.T(), []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, left.Tiles())

	back, ok := up.Apply(puzzle.Up.Opposite())
	require.True(s.T(), ok)
	require.Equal(s.T(), g, back)
}

func (s *StateSuite) TestMovesOrder() {
	dirs := func(st puzzle.State) string {
		return puzzle.Letters(st.Moves())
	}
	require.Equal(s.T(), "UL", dirs(puzzle.Goal(3)))

	center := board(s.T(), 3, 1, 2, 3, 4, 0, 5, 6, 7, 8)
	require.Equal(s.T(), "DURL", dirs(center))

	for _, m := range center.Moves() {
		require.Equal(s.T(), center, m.Source())
		require.Equal(s.T(), 1, m.Cost())
		r := m.Reverse()
		require.Equal(s.T(), m.Target(), r.Source())
		require.Equal(s.T(), center, r.Target())
		require.Equal(s.T(), m.Dir.Opposite(), r.Dir)
	}
}

func (s *StateSuite) TestTableOutEdges() {
	moves, err := puzzle.Table{}.OutEdges(puzzle.Goal(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), "UL", puzzle.Letters(moves))
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateSuite))
}

func TestHeuristics(t *testing.T) {
	all := map[string]astar.Heuristic[puzzle.State, int]{
		"displaced":       puzzle.Displaced,
		"manhattan":       puzzle.Manhattan,
		"empty":           puzzle.EmptyDistance,
		"corner":          puzzle.Corner,
		"linear_conflict": puzzle.LinearConflict,
	}
	for side := 2; side <= 4; side++ {
		for name, h := range all {
			require.Zero(t, h(puzzle.Goal(side)), "%s on side %d", name, side)
		}
	}

	oneOff := board(t, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8)
	require.Equal(t, 1, puzzle.Displaced(oneOff))
	require.Equal(t, 1, puzzle.Manhattan(oneOff))
	require.Equal(t, 1, puzzle.EmptyDistance(oneOff))
	require.Equal(t, 1, puzzle.LinearConflict(oneOff))

	swapped := board(t, 3, 2, 1, 3, 4, 5, 6, 7, 8, 0)
	require.Equal(t, 2, puzzle.Displaced(swapped))
	require.Equal(t, 2, puzzle.Manhattan(swapped))
	require.Equal(t, 4, puzzle.LinearConflict(swapped))
	require.Equal(t, 1, puzzle.Corner(swapped))
}

func TestSolvable(t *testing.T) {
	require.True(t, puzzle.Solvable(puzzle.Goal(2)))
	require.True(t, puzzle.Solvable(puzzle.Goal(3)))
	require.True(t, puzzle.Solvable(puzzle.Goal(4)))
	require.False(t, puzzle.Solvable(board(t, 3, 2, 1, 3, 4, 5, 6, 7, 8, 0)))
	require.False(t, puzzle.Solvable(board(t, 4, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0)))

	// every board reached by legal moves stays solvable
	rng := rand.New(rand.NewSource(13))
	for side := 2; side <= 4; side++ {
		s := puzzle.Goal(side)
		for i := 0; i < 200; i++ {
			moves := s.Moves()
			s = moves[rng.Intn(len(moves))].Target()
			require.True(t, puzzle.Solvable(s), "side %d after %d moves:\n%v", side, i+1, s)
		}
	}
}

func TestSolve_Short(t *testing.T) {
	moves, err := puzzle.Solve(board(t, 3, 1, 2, 3, 4, 0, 6, 7, 5, 8), puzzle.Manhattan)
	require.NoError(t, err)
	require.Equal(t, "DR", puzzle.Letters(moves))

	moves, err = puzzle.Solve(puzzle.Goal(3), puzzle.Manhattan)
	require.NoError(t, err)
	require.Empty(t, moves)
}

func TestSolve_Unsolvable(t *testing.T) {
	_, err := puzzle.Solve(board(t, 3, 2, 1, 3, 4, 5, 6, 7, 8, 0), puzzle.Manhattan)
	require.ErrorIs(t, err, puzzle.ErrUnsolvable)
}

func TestSolve_ExpansionLimit(t *testing.T) {
	s := board(t, 3, 8, 6, 7, 2, 5, 4, 3, 0, 1)
	_, err := puzzle.Solve(s, puzzle.Manhattan, astar.WithMaxExpansions(10))
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
}

// TestSolve_Scrambled replays the answer and compares its length with an
// uninformed search, which is optimal by construction.
func TestSolve_Scrambled(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for round := 0; round < 10; round++ {
		s := puzzle.Goal(3)
		for i := 0; i < 14; i++ {
			moves := s.Moves()
			s = moves[rng.Intn(len(moves))].Target()
		}

		informed, err := puzzle.Solve(s, puzzle.LinearConflict)
		require.NoError(t, err)
		blind, err := puzzle.Solve(s, astar.Zero[puzzle.State, int])
		require.NoError(t, err)
		require.Len(t, informed, len(blind), "round %d", round)

		cur := s
		for _, m := range informed {
			next, ok := cur.Apply(m.Dir)
			require.True(t, ok)
			cur = next
		}
		require.Equal(t, puzzle.Goal(3), cur, "round %d", round)
	}
}
