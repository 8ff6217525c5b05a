// Package problem reads graph problems for the graphwalk command, either as
// whitespace-separated integer tokens or as YAML documents.
//
// Token layouts:
//
//	path       n m s f, then m pairs a b           vertices 0..n-1
//	edge list  n m, then m pairs a b               vertices base..base+n-1
//	weighted   k, then k blocks: n m, m triples a b w, start
//	tiles      side² integers, 0 for the blank
//
// YAML layout (one problem per document, "---" separated):
//
//	vertices: [0, 1, 2, 3]
//	directed: false
//	start: 0
//	finish: 3
//	edges:
//	  - {from: 0, to: 1, weight: 4}
//	tiles: [1, 2, 3, 4, 5, 6, 7, 0, 8]
//
// Every edge endpoint must be a listed vertex; violations fail with
// ErrBadInput naming the offending edge.
package problem
