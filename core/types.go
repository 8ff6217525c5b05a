// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge capabilities, concrete edge types, the Graph contract, options and
//       sentinel errors.

package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Weight is the set of numeric types usable as edge costs.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is the capability every stored edge type must provide.
//
// Reverse must return a copy with swapped endpoints and an unchanged payload
// (weight, number, multiplicity).
type Edge[V comparable, E any] interface {
	Source() V
	Target() V
	Reverse() E
}

// WeightedEdge is an Edge that carries a traversal cost.
type WeightedEdge[V comparable, W Weight, E any] interface {
	Edge[V, E]
	Cost() W
}

// Merger is implemented by edges that can absorb a parallel duplicate.
// MatrixGraph uses it when the same ordered pair is inserted twice.
type Merger[E any] interface {
	Merge(other E) E
}

// Multiplier is implemented by edges that remember how many parallel
// copies they stand for.
type Multiplier interface {
	Multiplicity() int
}

// Pair is a plain unweighted edge.
type Pair[V comparable] struct {
	First  V
	Second V
}

// P is a shorthand constructor for Pair.
func P[V comparable](first, second V) Pair[V] { return Pair[V]{First: first, Second: second} }

func (p Pair[V]) Source() V        { return p.First }
func (p Pair[V]) Target() V        { return p.Second }
func (p Pair[V]) Reverse() Pair[V] { return Pair[V]{First: p.Second, Second: p.First} }

// Weighted is an edge with a numeric cost.
type Weighted[V comparable, W Weight] struct {
	First  V
	Second V
	Weight W
}

func (e Weighted[V, W]) Source() V { return e.First }
func (e Weighted[V, W]) Target() V { return e.Second }
func (e Weighted[V, W]) Cost() W   { return e.Weight }

// Reverse swaps the endpoints and keeps the weight.
func (e Weighted[V, W]) Reverse() Weighted[V, W] {
	return Weighted[V, W]{First: e.Second, Second: e.First, Weight: e.Weight}
}

// Numbered is an edge identified by its input position.
//
// Repeat counts parallel copies merged into this entry; zero is read as one.
// Two Numbered edges are the same edge iff their Numbers are equal.
type Numbered[V comparable] struct {
	Number uint32
	First  V
	Second V
	Repeat uint32
}

func (e Numbered[V]) Source() V { return e.First }
func (e Numbered[V]) Target() V { return e.Second }

// Reverse swaps the endpoints and keeps Number and Repeat.
func (e Numbered[V]) Reverse() Numbered[V] {
	e.First, e.Second = e.Second, e.First
	return e
}

// Multiplicity reports how many parallel input edges this entry represents.
func (e Numbered[V]) Multiplicity() int {
	if e.Repeat == 0 {
		return 1
	}
	return int(e.Repeat)
}

// Merge folds a parallel duplicate into e, keeping the smaller Number.
func (e Numbered[V]) Merge(other Numbered[V]) Numbered[V] {
	out := e
	out.Repeat = uint32(e.Multiplicity() + other.Multiplicity())
	if other.Number < e.Number {
		out.Number = other.Number
	}
	return out
}

// Less orders numbered edges by Number.
func (e Numbered[V]) Less(other Numbered[V]) bool { return e.Number < other.Number }

// Adjacency is the minimal capability weighted search needs: the outgoing
// edges of a vertex. Implicit graphs (puzzle state spaces) implement only this.
type Adjacency[V comparable, E any] interface {
	OutEdges(v V) ([]E, error)
}

// Graph is the read-only contract shared by ListGraph and MatrixGraph.
type Graph[V comparable, E Edge[V, E]] interface {
	Adjacency[V, E]

	// VerticesCount returns the number of distinct vertices.
	VerticesCount() int

	// EdgesCount returns the number of distinct edges; an undirected edge is
	// counted once although it is stored twice.
	EdgesCount() int

	// Vertices returns all vertices in registration order.
	Vertices() []V

	// Index returns the dense position of v in Vertices().
	Index(v V) (int, bool)

	// Neighbours returns the vertices reachable from v over one edge.
	Neighbours(v V) ([]V, error)

	// HasEdge reports whether an edge u→v is stored.
	HasEdge(u, v V) bool

	// Edge returns the stored u→v edge, oriented with Source()==u.
	Edge(u, v V) (E, bool)

	// IterateNeighbours lazily yields neighbours whose connecting edge
	// satisfies keep. A nil keep accepts every edge.
	IterateNeighbours(v V, keep func(E) bool) (*Neighbors[V, E], error)

	// Directed reports whether edges were stored one-way.
	Directed() bool
}

// Option configures graph construction.
type Option func(*options)

type options struct {
	directed bool
}

// WithDirected stores each edge only under its source vertex.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
