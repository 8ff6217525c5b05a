// Package astar implements A* search over any core.Adjacency with
// non-negative edge costs, guided by a caller-supplied Heuristic.
//
// The frontier is ordered by f(v) = dist(v) + h(v); ties are broken by
// insertion order, so results are deterministic. The search stops as soon
// as the goal is popped. A vertex that was already expanded is re-opened
// only when a strictly shorter distance to it is found, so admissible but
// inconsistent heuristics still yield optimal distances.
//
// Hooks fired on the supplied visit.Visitor (none at all when g knows its
// vertices and start is not among them):
//
//   - OnStart(start) once.
//   - OnExamineVertex(u) when u is popped and expanded (including the goal).
//   - OnExamineEdge(e) for every edge leaving an expanded vertex.
//   - OnOptimize(e) when e improves the distance of e.Target().
//
// GameVisitor records the improving edge into each vertex, from which
// Path rebuilds the move sequence.
//
// Heuristics:
//
//	Heuristic[V, W] is a plain func(V) W. Convex blends several of them
//	with fixed coefficients.
//
// Options:
//
//   - WithContext(ctx):       cancellation, checked once per pop.
//   - WithMaxExpansions(n):   fail with ErrExpansionLimit after n expansions.
//
// Complexity: O(E log E) heap operations in the worst case; the practical
// cost depends entirely on heuristic quality.
package astar
