// Package dijkstra implements Dijkstra's shortest-path algorithm over any
// core.Adjacency whose edges carry a non-negative cost.
//
// Dijkstra computes the minimum-cost distance from a single start vertex to
// every reachable vertex. Vertices are settled in order of increasing
// distance using a binary min-heap; a shorter distance found later pushes a
// fresh heap entry and the outdated one is skipped when popped
// ("lazy decrease-key").
//
// Hooks fired on the supplied visit.Visitor:
//
//   - OnStart(start) once, before the first pop.
//   - OnExamineVertex(u) when u is settled.
//   - OnExamineEdge(e) for every edge leaving a settled vertex.
//   - OnOptimize(e) when e improves the distance of e.Target()
//     (first reach, or strictly shorter).
//
// DistanceVisitor turns these hooks into distances, parents and paths.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E stale entries.
//
// Options:
//
//   - WithContext(ctx):          cancellation, checked once per pop.
//   - WithMaxDistance(d):        do not settle vertices farther than d.
//   - WithInfEdgeThreshold(t):   edges with cost ≥ t are impassable.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if g is nil.
//   - ErrNegativeWeight  if an edge with negative cost is seen. When g also
//     lists its vertices (core.Graph), every edge is scanned up front.
//   - ErrBadMaxDistance, ErrBadInfThreshold for invalid options.
//
// An unknown start vertex is an empty search: Run returns an empty map,
// no error, and fires no hooks. Implicit graphs that cannot look up
// vertices report it through OutEdges instead.
//
// Example usage:
//
//	dv := dijkstra.NewDistanceVisitor[int, int, core.Weighted[int, int]]()
//	dist, err := dijkstra.Run[int, int](g, 0, dv.Visitor())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[3], dv.Path(3))
package dijkstra
