package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGraph is returned when g is nil.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic is returned when h is nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNegativeWeight is returned when an expanded edge has negative cost.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded
	// before the goal is reached.
	ErrExpansionLimit = errors.New("astar: expansion limit exceeded")

	// ErrCoefficients is returned by Convex when the numbers of heuristics
	// and coefficients differ.
	ErrCoefficients = errors.New("astar: numbers of heuristics and coefficients don't match")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a vertex to the goal.
// It must never overestimate for the returned distance to be optimal.
type Heuristic[V comparable, W core.Weight] func(v V) W

// Zero is the heuristic that always returns 0; A* with Zero is Dijkstra
// with early exit.
func Zero[V comparable, W core.Weight](V) W { return 0 }

// Convex returns Σ coefficients[i]·heuristics[i](v).
func Convex[V comparable, W core.Weight](heuristics []Heuristic[V, W], coefficients []W) (Heuristic[V, W], error) {
	if len(heuristics) != len(coefficients) {
		return nil, fmt.Errorf("%w: %d heuristics, %d coefficients", ErrCoefficients, len(heuristics), len(coefficients))
	}
	hs := append([]Heuristic[V, W](nil), heuristics...)
	cs := append([]W(nil), coefficients...)
	return func(v V) W {
		var total W
		for i, h := range hs {
			total += cs[i] * h(v)
		}
		return total
	}, nil
}

// Option configures A* via functional arguments.
type Option func(*Options)

// Options holds parameters to customize A* execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the number of expanded vertices.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with a background context and no
// expansion limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of vertices A* may expand.
// Zero means no limit; negative values are rejected with ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
