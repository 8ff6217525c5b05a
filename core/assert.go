package core

// Compile-time checks that both strategies satisfy Graph.
var (
	_ Graph[int, Pair[int]]                          = (*ListGraph[int, Pair[int]])(nil)
	_ Graph[int, Pair[int]]                          = (*MatrixGraph[int, Pair[int]])(nil)
	_ Graph[int, Weighted[int, int64]]               = (*ListGraph[int, Weighted[int, int64]])(nil)
	_ Graph[uint16, Numbered[uint16]]                = (*MatrixGraph[uint16, Numbered[uint16]])(nil)
	_ WeightedEdge[int, int64, Weighted[int, int64]] = Weighted[int, int64]{}
	_ Merger[Numbered[int]]                          = Numbered[int]{}
	_ Multiplier                                     = Numbered[int]{}
)

var _ Graph[int, Pair[int]] = (*FilteredView[int, Pair[int]])(nil)
