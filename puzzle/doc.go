// Package puzzle models the N×N sliding-tile puzzle (N from 2 to 4) as an
// implicit weighted graph and solves it with A*.
//
// State packs the board into a uint64, four bits per cell in row-major
// order, with 0 standing for the blank. States are therefore comparable and
// usable as map keys and as core vertices without any registry.
//
// The goal board holds tiles 1..N²-1 in order with the blank last:
//
//	1 2 3
//	4 5 6
//	7 8 0
//
// Moves are named after the direction the blank travels (U, D, L, R). Table
// generates them in the order D, U, R, L, which fixes the solution A* finds
// among equally short ones.
//
// Heuristics (all astar.Heuristic[State, int]):
//
//   - Displaced       tiles out of place.
//   - Manhattan       sum of tile distances to their goal cells.
//   - EmptyDistance   distance of the blank to the last cell.
//   - Corner          Manhattan restricted to the three corner tiles and the
//     blank. Not admissible; useful only inside a Convex blend.
//   - LinearConflict  Manhattan plus two moves per pair of tiles that sit in
//     their goal row (or column) in reversed order.
//
// Solvable decides reachability by inversion parity, so Solve rejects
// impossible boards with ErrUnsolvable before searching.
package puzzle
