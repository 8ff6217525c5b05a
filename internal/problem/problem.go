package problem

import (
	"errors"
	"fmt"
)

// ErrBadInput reports malformed or inconsistent problem data.
var ErrBadInput = errors.New("problem: bad input")

// Edge is one input edge. Weight is zero for unweighted problems.
type Edge struct {
	From   int `yaml:"from"`
	To     int `yaml:"to"`
	Weight int `yaml:"weight,omitempty"`
}

// Document is one graph problem.
type Document struct {
	Vertices []int  `yaml:"vertices,omitempty"`
	Edges    []Edge `yaml:"edges,omitempty"`
	Directed bool   `yaml:"directed,omitempty"`
	Start    int    `yaml:"start,omitempty"`
	Finish   int    `yaml:"finish,omitempty"`
	Tiles    []int  `yaml:"tiles,omitempty"`
}

// Validate checks that every edge endpoint is listed. Documents without
// vertices (puzzle boards) are accepted. Start and Finish are not checked:
// engines treat an unknown start as an empty traversal or an error.
func (d Document) Validate() error {
	if len(d.Vertices) == 0 {
		if len(d.Edges) > 0 {
			return fmt.Errorf("%w: %d edges but no vertices", ErrBadInput, len(d.Edges))
		}
		return nil
	}
	known := make(map[int]struct{}, len(d.Vertices))
	for _, v := range d.Vertices {
		known[v] = struct{}{}
	}
	for i, e := range d.Edges {
		_, okFrom := known[e.From]
		_, okTo := known[e.To]
		if !okFrom || !okTo {
			return fmt.Errorf("%w: edge #%d (%d, %d) references an unknown vertex", ErrBadInput, i+1, e.From, e.To)
		}
	}
	return nil
}

// Span returns the vertex list base, base+1, ..., base+n-1.
func Span(base, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = base + i
	}
	return out
}
