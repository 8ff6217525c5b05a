// Package dfs defines options and errors for depth-first traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Run, Forest,
	// NewWalker or any helper built on them.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNotDirected is returned by TopologicalSort and StronglyConnected
	// when the graph stores edges in both directions.
	ErrNotDirected = errors.New("dfs: graph must be directed")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// SkipParent skips one adjacency entry leading back to the parent of
	// the current vertex (undirected tree-edge reverse).
	SkipParent bool

	// MaxDepth, if non-negative, stops expanding vertices at that depth.
	// A depth of 0 examines only the roots. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no parent
// skipping and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		SkipParent: false,
		MaxDepth:   -1,
	}
}

// WithContext sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSkipParent enables parent-aware traversal for undirected graphs.
func WithSkipParent() Option {
	return func(o *Options) {
		o.SkipParent = true
	}
}

// WithMaxDepth limits expansion depth. Negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
