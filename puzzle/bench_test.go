package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/graphwalk/puzzle"
)

// BenchmarkSolve_Hard8 solves one of the two hardest 8-puzzle boards
// (31 moves) with each admissible heuristic.
func BenchmarkSolve_Hard8(b *testing.B) {
	s, err := puzzle.New(3, []int{8, 6, 7, 2, 5, 4, 3, 0, 1})
	if err != nil {
		b.Fatal(err)
	}
	b.Run("manhattan", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = puzzle.Solve(s, puzzle.Manhattan)
		}
	})
	b.Run("linear_conflict", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = puzzle.Solve(s, puzzle.LinearConflict)
		}
	})
}
