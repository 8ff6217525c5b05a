package puzzle

import (
	"fmt"
	"strings"
)

// State is an immutable board position.
type State struct {
	bits uint64
	side uint8
}

// New builds a State from tiles listed row by row, 0 being the blank.
func New(side int, tiles []int) (State, error) {
	if side < minSide || side > maxSide {
		return State{}, fmt.Errorf("%w: got %d", ErrSize, side)
	}
	n := side * side
	if len(tiles) != n {
		return State{}, fmt.Errorf("%w: want %d tiles, got %d", ErrInvalidBoard, n, len(tiles))
	}
	seen := make([]bool, n)
	s := State{side: uint8(side)}
	for pos, t := range tiles {
		if t < 0 || t >= n || seen[t] {
			return State{}, fmt.Errorf("%w: tile %d at cell %d", ErrInvalidBoard, t, pos)
		}
		seen[t] = true
		s.bits |= uint64(t) << (cellBits * pos)
	}
	return s, nil
}

// Goal returns the solved board of the given side. It panics on a side
// outside 2..4.
func Goal(side int) State {
	n := side * side
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	s, err := New(side, tiles)
	if err != nil {
		panic(err)
	}
	return s
}

// Side returns the board width.
func (s State) Side() int { return int(s.side) }

// Cells returns the number of cells, Side()².
func (s State) Cells() int { return int(s.side) * int(s.side) }

// At returns the tile in cell pos (row-major, 0-based).
func (s State) At(pos int) int { return int((s.bits >> (cellBits * pos)) & cellMask) }

// Tiles returns the board row by row.
func (s State) Tiles() []int {
	out := make([]int, s.Cells())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Find returns the cell holding tile t, or -1.
func (s State) Find(t int) int {
	for pos := 0; pos < s.Cells(); pos++ {
		if s.At(pos) == t {
			return pos
		}
	}
	return -1
}

// Blank returns the cell of the blank.
func (s State) Blank() int { return s.Find(0) }

// Apply moves the blank one cell in direction d. ok is false when the blank
// would leave the board; s is then returned unchanged.
func (s State) Apply(d Direction) (next State, ok bool) {
	side := s.Side()
	blank := s.Blank()
	dr, dc := d.offset()
	r, c := blank/side+dr, blank%side+dc
	if (dr == 0 && dc == 0) || r < 0 || r >= side || c < 0 || c >= side {
		return s, false
	}
	pos := r*side + c
	tile := uint64(s.At(pos))
	next = s
	next.bits &^= cellMask << (cellBits * pos)
	next.bits |= tile << (cellBits * blank)
	return next, true
}

// Moves lists the legal moves from s in D, U, R, L order.
func (s State) Moves() []Move {
	out := make([]Move, 0, len(directions))
	for _, d := range directions {
		if next, ok := s.Apply(d); ok {
			out = append(out, Move{From: s, To: next, Dir: d})
		}
	}
	return out
}

// String renders the board as rows of space-separated tiles.
func (s State) String() string {
	var b strings.Builder
	side := s.Side()
	for pos := 0; pos < s.Cells(); pos++ {
		if pos > 0 {
			if pos%side == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%d", s.At(pos))
	}
	return b.String()
}
