package core

import "fmt"

// registry keeps vertices in registration order and maps each one to its
// dense index. Both storage strategies embed it.
type registry[V comparable] struct {
	order []V
	index map[V]int
}

func newRegistry[V comparable](capacity int) registry[V] {
	return registry[V]{
		order: make([]V, 0, capacity),
		index: make(map[V]int, capacity),
	}
}

// add registers v if absent and returns its dense index and whether it was new.
func (r *registry[V]) add(v V) (int, bool) {
	if i, ok := r.index[v]; ok {
		return i, false
	}
	i := len(r.order)
	r.order = append(r.order, v)
	r.index[v] = i
	return i, true
}

// lookup returns the dense index of v or a wrapped ErrVertexNotFound.
func (r *registry[V]) lookup(v V) (int, error) {
	i, ok := r.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return i, nil
}

// VerticesCount returns the number of registered vertices.
func (r *registry[V]) VerticesCount() int { return len(r.order) }

// Vertices returns a copy of the vertices in registration order.
func (r *registry[V]) Vertices() []V {
	out := make([]V, len(r.order))
	copy(out, r.order)
	return out
}

// Index returns the dense position of v.
func (r *registry[V]) Index(v V) (int, bool) {
	i, ok := r.index[v]
	return i, ok
}
