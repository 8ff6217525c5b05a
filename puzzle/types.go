package puzzle

import "errors"

// Sentinel errors for puzzle operations.
var (
	// ErrSize indicates a board side outside 2..4.
	ErrSize = errors.New("puzzle: board side must be between 2 and 4")

	// ErrInvalidBoard indicates the tiles are not a permutation of 0..N²-1.
	ErrInvalidBoard = errors.New("puzzle: tiles must be a permutation of 0..N²-1")

	// ErrUnsolvable indicates the goal cannot be reached from the board.
	ErrUnsolvable = errors.New("puzzle: board is not solvable")
)

// Direction is the way the blank travels in one move, printed as a letter.
type Direction byte

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// directions is the generation order of Moves.
var directions = [...]Direction{Down, Up, Right, Left}

func (d Direction) String() string { return string(rune(d)) }

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// offset returns the row and column step of d.
func (d Direction) offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

const (
	minSide  = 2
	maxSide  = 4
	cellBits = 4
	cellMask = 0xF
)
