package puzzle

// distance returns the Manhattan distance between two cells.
func distance(side, a, b int) int {
	dr := a/side - b/side
	dc := a%side - b%side
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// home returns the goal cell of tile t.
func home(cells, t int) int {
	if t == 0 {
		return cells - 1
	}
	return t - 1
}

// displacement is the distance of tile t from its goal cell.
func (s State) displacement(t int) int {
	return distance(s.Side(), s.Find(t), home(s.Cells(), t))
}

// Displaced counts tiles (not the blank) outside their goal cell.
func Displaced(s State) int {
	n := 0
	for pos := 0; pos < s.Cells(); pos++ {
		if t := s.At(pos); t != 0 && home(s.Cells(), t) != pos {
			n++
		}
	}
	return n
}

// Manhattan sums the distances of every tile to its goal cell.
func Manhattan(s State) int {
	side, cells := s.Side(), s.Cells()
	total := 0
	for pos := 0; pos < cells; pos++ {
		if t := s.At(pos); t != 0 {
			total += distance(side, pos, home(cells, t))
		}
	}
	return total
}

// EmptyDistance is the distance of the blank to the last cell.
func EmptyDistance(s State) int { return s.displacement(0) }

// Corner sums the displacements of the tiles that belong in the top-left,
// top-right and bottom-left corners, plus the blank.
func Corner(s State) int {
	side := s.Side()
	return s.displacement(1) +
		s.displacement(side) +
		s.displacement(s.Cells()-side+1) +
		s.displacement(0)
}

// LinearConflict adds to Manhattan two moves for every pair of tiles that
// share their goal row (or column), already sit in it, and are reversed.
func LinearConflict(s State) int {
	side, cells := s.Side(), s.Cells()
	conflicts := 0
	for line := 0; line < side; line++ {
		conflicts += lineConflicts(s, side, cells, func(k int) int { return line*side + k }, func(h int) int { return h / side }, line)
		conflicts += lineConflicts(s, side, cells, func(k int) int { return k*side + line }, func(h int) int { return h % side }, line)
	}
	return Manhattan(s) + 2*conflicts
}

// lineConflicts counts reversed pairs among the tiles of one row or column.
// cell maps a position along the line to a board cell; lineOf maps a goal
// cell to its line number.
func lineConflicts(s State, side, cells int, cell func(int) int, lineOf func(int) int, line int) int {
	goals := make([]int, 0, side)
	for k := 0; k < side; k++ {
		t := s.At(cell(k))
		if t == 0 {
			continue
		}
		if h := home(cells, t); lineOf(h) == line {
			goals = append(goals, h)
		}
	}
	n := 0
	for i := 0; i < len(goals); i++ {
		for j := i + 1; j < len(goals); j++ {
			if goals[i] > goals[j] {
				n++
			}
		}
	}
	return n
}
