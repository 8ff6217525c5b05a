package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// maxToken bounds a single whitespace-separated token.
const maxToken = 1 << 20

// Tokens reads integers separated by arbitrary whitespace.
type Tokens struct {
	sc   *bufio.Scanner
	read int
}

// NewTokens wraps r.
func NewTokens(r io.Reader) *Tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)
	return &Tokens{sc: sc}
}

// Int returns the next integer. Running out of input is reported as
// io.ErrUnexpectedEOF.
func (t *Tokens) Int() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: after %d tokens", io.ErrUnexpectedEOF, t.read)
	}
	t.read++
	n, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %v", ErrBadInput, t.read, err)
	}
	return n, nil
}

// Count reads a non-negative integer.
func (t *Tokens) Count() (int, error) {
	n, err := t.Int()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %d at token %d", ErrBadInput, n, t.read)
	}
	return n, nil
}

// Ints reads n integers.
func (t *Tokens) Ints(n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := t.Int()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *Tokens) edges(m int, weighted bool) ([]Edge, error) {
	edges := make([]Edge, m)
	for i := range edges {
		var err error
		if edges[i].From, err = t.Int(); err != nil {
			return nil, err
		}
		if edges[i].To, err = t.Int(); err != nil {
			return nil, err
		}
		if !weighted {
			continue
		}
		if edges[i].Weight, err = t.Int(); err != nil {
			return nil, err
		}
	}
	return edges, nil
}

// ReadPath reads "n m s f" and m pairs; vertices are 0..n-1, undirected.
func ReadPath(r io.Reader) (Document, error) {
	t := NewTokens(r)
	head := make([]int, 4)
	for i := range head {
		var err error
		if i < 2 {
			head[i], err = t.Count()
		} else {
			head[i], err = t.Int()
		}
		if err != nil {
			return Document{}, err
		}
	}
	edges, err := t.edges(head[1], false)
	if err != nil {
		return Document{}, err
	}
	d := Document{Vertices: Span(0, head[0]), Edges: edges, Start: head[2], Finish: head[3]}
	return d, d.Validate()
}

// ReadEdgeList reads "n m" and m pairs; vertices are base..base+n-1.
// Start and Finish are set to base.
func ReadEdgeList(r io.Reader, base int, directed bool) (Document, error) {
	t := NewTokens(r)
	n, err := t.Count()
	if err != nil {
		return Document{}, err
	}
	m, err := t.Count()
	if err != nil {
		return Document{}, err
	}
	edges, err := t.edges(m, false)
	if err != nil {
		return Document{}, err
	}
	d := Document{Vertices: Span(base, n), Edges: edges, Directed: directed, Start: base, Finish: base}
	if n == 0 {
		d.Vertices = nil
	}
	return d, d.Validate()
}

// ReadWeighted reads k weighted undirected graphs, each followed by its
// start vertex; vertices are 0..n-1.
func ReadWeighted(r io.Reader) ([]Document, error) {
	t := NewTokens(r)
	k, err := t.Count()
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, k)
	for i := 0; i < k; i++ {
		n, err := t.Count()
		if err != nil {
			return nil, err
		}
		m, err := t.Count()
		if err != nil {
			return nil, err
		}
		edges, err := t.edges(m, true)
		if err != nil {
			return nil, err
		}
		start, err := t.Int()
		if err != nil {
			return nil, err
		}
		d := Document{Vertices: Span(0, n), Edges: edges, Start: start, Finish: start}
		if err = d.Validate(); err != nil {
			return nil, fmt.Errorf("graph %d: %w", i+1, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// ReadTiles reads count integers describing a puzzle board.
func ReadTiles(r io.Reader, count int) (Document, error) {
	tiles, err := NewTokens(r).Ints(count)
	if err != nil {
		return Document{}, err
	}
	return Document{Tiles: tiles}, nil
}
