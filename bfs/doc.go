// Package bfs provides breadth-first search over a core.Graph, reporting its
// progress through visit.Visitor hooks.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Per-vertex colour (White → Gray → Black) lives in a slice indexed by the
//     graph's dense vertex index and is discarded after the run.
//   - Hooks fired, in order:
//   - OnInitialize for every vertex, before anything else
//   - OnDiscover for the start vertex
//   - per dequeued vertex: OnExamineVertex, then per edge OnExamineEdge and
//     either OnTreeEdge + OnDiscover (White target) or OnNonTreeEdge followed
//     by OnGrayTarget / OnBlackTarget; finally OnFinish
//
// Why
//
//   - Unweighted shortest paths in O(V + E) (pair with visit.ParentVisitor).
//   - Reachability, level layering, bipartiteness checks via GrayTarget.
//
// Missing start
//
//	If start is not a vertex of g, Run fires OnInitialize for every vertex and
//	returns nil: an absent start is an empty traversal, not an error.
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):   do not expand vertices at depth d (d > 0); 0 = no limit.
//
// Filtering
//
//	To hide edges, run over a view: Run(core.Filter(g, keep), start, v).
//	The predicate is typed on the graph's edge type, so a mismatch is a
//	compile error rather than a run-time one.
//
// Errors
//
//   - ErrGraphNil         if g is nil.
//   - ErrOptionViolation  for an invalid option (negative depth).
//   - context errors      when the context is cancelled.
//
// Complexity: Time O(V + E), Memory O(V).
package bfs
