// Package graphwalk is a small toolkit of generic graph traversals driven by
// visitors: one set of hooks, four engines, and the visitors that turn hook
// calls into answers.
//
// What is in the box:
//
//	core/      Graph contract, ListGraph and MatrixGraph storage, edge types
//	visit/     Visitor hook set, ParentVisitor, Enumerator, Recorder
//	bfs/       breadth-first search, ShortestPath, Layers
//	dfs/       iterative depth-first search, TopologicalSorter,
//	           BridgesFinder, StronglyConnected (Kosaraju)
//	dijkstra/  single-source shortest paths, DistanceVisitor
//	astar/     A* with pluggable heuristics, GameVisitor
//	puzzle/    sliding-puzzle boards as an implicit graph for A*
//
// The graphwalk command in cmd/graphwalk reads problems from stdin (token
// or YAML input) and prints answers for every engine.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// BFS from A discovers B and C, then D through B; the ParentVisitor then
// yields the path A → B → D.
//
//	go get github.com/katalvlaran/graphwalk
package graphwalk
