// Package core provides the generic graph model shared by every traversal
// engine in graphwalk: edge capabilities, the Graph interface, and two
// interchangeable storage strategies.
//
// The Graph G = (V,E) is parametric over any comparable vertex type V and any
// edge type E that knows its endpoints and how to reverse itself:
//
//   - ListGraph   – adjacency lists; O(1) insertion, O(deg) neighbour scan.
//     Suited for sparse graphs that are built once and traversed.
//   - MatrixGraph – adjacency "matrix" stored as map rows; O(1) HasEdge/Edge.
//     Suited for algorithms dominated by edge lookups (e.g. bridge finding).
//
// Both implementations answer VerticesCount, EdgesCount, Neighbours, HasEdge and
// Edge identically for the same simple edge list. This equivalence is the
// central cross-implementation invariant and is pinned by tests.
//
// Orientation:
//
//	Undirected graphs (the default) store every edge twice: e under e.Source()
//	and e.Reverse() under e.Target(). Each adjacency entry is therefore
//	re-oriented so that entry.Source() equals the vertex it lives under.
//	Visitors such as dfs.BridgesFinder rely on that guarantee.
//
//	WithDirected() stores only e under e.Source().
//
// Vertex registry:
//
//	Vertices() returns vertices in registration order: first the caller's vertex
//	list, then any endpoint that appears only in edges (in edge order). Index(v)
//	maps each vertex to its dense position so engines can keep per-run state in
//	slices instead of maps.
//
// Errors:
//
//	ErrVertexNotFound – Neighbours/OutEdges/IterateNeighbours on an absent vertex.
//
//	Duplicate vertices in the constructor's list are registered once.
//
// Concurrency:
//
//	Graphs are immutable after construction and may be shared by readers.
//	Neighbors iterators are single-use and must not be shared.
//
// Complexity (V = |vertices|, E = |edges|):
//
//   - Construction: O(V + E) for both strategies.
//   - ListGraph:    Neighbours O(deg), HasEdge/Edge O(deg).
//   - MatrixGraph:  Neighbours O(deg), HasEdge/Edge O(1) expected.
package core
