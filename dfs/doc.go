// Package dfs implements depth-first search on a core.Graph together with
// the visitors that need DFS ordering: topological sort, bridge finding and
// strongly connected components.
//
// What:
//
//   - Run(g, start, v, opts...)  single-root traversal.
//   - Forest(g, v, opts...)      restarts from every White vertex in
//     g.Vertices() order, covering disconnected components.
//   - Walker                     the reusable engine behind both, for callers
//     that drive several roots over one colouring (Kosaraju).
//   - TopologicalSorter / TopologicalSort
//   - BridgesFinder / Bridges
//   - StronglyConnected
//
// Iterative engine:
//
//	The engine never recurses. Each stack frame owns a core.Neighbors cursor,
//	so a frame is resumed exactly where the recursive formulation would
//	return to, and hook order is identical:
//
//	  Discover(v) → ExamineVertex(v) →
//	    for each edge e: ExamineEdge(e) →
//	      White target: TreeEdge(e) → [child visit] → FinishEdge(e)
//	      otherwise:    BackEdge(e) → GrayTarget(t) | BlackTarget(t)
//	  → Finish(v)
//
//	Stack depth is bounded by heap memory, not the goroutine stack, so chains
//	and stars of any size are safe.
//
// Parent-aware mode (WithSkipParent):
//
//	In an undirected graph the reverse of a tree edge would otherwise be
//	reported as a back edge. WithSkipParent skips exactly one adjacency entry
//	that leads back to the parent, before ExamineEdge. Further parallel
//	entries to the parent are reported as back edges, which keeps multi-edges
//	from being mistaken for bridges.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked on every vertex discovery.
//   - WithSkipParent()   parent-aware mode, see above.
//   - WithMaxDepth(d)    do not expand vertices deeper than d (d >= 0).
//
// Errors:
//
//   - ErrGraphNil        g is nil.
//   - ErrNotDirected     TopologicalSort / StronglyConnected on an undirected graph.
//   - context errors     when the context is cancelled.
//
// An absent start vertex is not an error: Run returns nil after firing
// OnInitialize for every vertex.
//
// Complexity: Time O(V + E), Memory O(V).
package dfs
