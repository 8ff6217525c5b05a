package visit

// Color marks the per-run state of a vertex.
type Color uint8

const (
	White Color = iota // not discovered yet
	Gray               // discovered, still on the frontier or stack
	Black              // fully processed
)

// String returns the lower-case colour name, or "unknown".
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Visitor is a set of optional traversal callbacks. The zero value observes
// nothing. Engines call the exported dispatch methods, never the fields.
type Visitor[V comparable, E any] struct {
	OnInitialize    func(v V)
	OnStart         func(v V)
	OnDiscover      func(v V)
	OnExamineVertex func(v V)
	OnExamineEdge   func(e E)
	OnTreeEdge      func(e E)
	OnNonTreeEdge   func(e E)
	OnBackEdge      func(e E)
	OnGrayTarget    func(v V)
	OnBlackTarget   func(v V)
	OnFinishEdge    func(e E)
	OnFinish        func(v V)
	OnOptimize      func(e E)
}

// Initialize runs OnInitialize for every vertex before a traversal starts.
func (h *Visitor[V, E]) Initialize(v V) {
	if h.OnInitialize != nil {
		h.OnInitialize(v)
	}
}

// Start runs OnStart once per search root.
func (h *Visitor[V, E]) Start(v V) {
	if h.OnStart != nil {
		h.OnStart(v)
	}
}

// Discover runs OnDiscover when v is first reached.
func (h *Visitor[V, E]) Discover(v V) {
	if h.OnDiscover != nil {
		h.OnDiscover(v)
	}
}

// ExamineVertex runs OnExamineVertex when v is taken off the frontier.
func (h *Visitor[V, E]) ExamineVertex(v V) {
	if h.OnExamineVertex != nil {
		h.OnExamineVertex(v)
	}
}

// ExamineEdge runs OnExamineEdge for every out-edge of an examined vertex.
func (h *Visitor[V, E]) ExamineEdge(e E) {
	if h.OnExamineEdge != nil {
		h.OnExamineEdge(e)
	}
}

// TreeEdge runs OnTreeEdge when e leads to an undiscovered vertex.
func (h *Visitor[V, E]) TreeEdge(e E) {
	if h.OnTreeEdge != nil {
		h.OnTreeEdge(e)
	}
}

// NonTreeEdge runs OnNonTreeEdge when e leads to a discovered vertex.
func (h *Visitor[V, E]) NonTreeEdge(e E) {
	if h.OnNonTreeEdge != nil {
		h.OnNonTreeEdge(e)
	}
}

// BackEdge runs OnBackEdge when e closes a cycle in a depth-first search.
func (h *Visitor[V, E]) BackEdge(e E) {
	if h.OnBackEdge != nil {
		h.OnBackEdge(e)
	}
}

// GrayTarget runs OnGrayTarget when a non-tree edge reaches a Gray vertex.
func (h *Visitor[V, E]) GrayTarget(v V) {
	if h.OnGrayTarget != nil {
		h.OnGrayTarget(v)
	}
}

// BlackTarget runs OnBlackTarget when a non-tree edge reaches a Black vertex.
func (h *Visitor[V, E]) BlackTarget(v V) {
	if h.OnBlackTarget != nil {
		h.OnBlackTarget(v)
	}
}

// FinishEdge runs OnFinishEdge after the subtree below a tree edge is done.
func (h *Visitor[V, E]) FinishEdge(e E) {
	if h.OnFinishEdge != nil {
		h.OnFinishEdge(e)
	}
}

// Finish runs OnFinish once every edge of v has been handled.
func (h *Visitor[V, E]) Finish(v V) {
	if h.OnFinish != nil {
		h.OnFinish(v)
	}
}

// Optimize runs OnOptimize when e lowers the distance of its target.
func (h *Visitor[V, E]) Optimize(e E) {
	if h.OnOptimize != nil {
		h.OnOptimize(e)
	}
}

// Merge returns a visitor that forwards every hook to each of vs in order.
func Merge[V comparable, E any](vs ...Visitor[V, E]) Visitor[V, E] {
	return Visitor[V, E]{
		OnInitialize:    chain(vs, func(h Visitor[V, E]) func(V) { return h.OnInitialize }),
		OnStart:         chain(vs, func(h Visitor[V, E]) func(V) { return h.OnStart }),
		OnDiscover:      chain(vs, func(h Visitor[V, E]) func(V) { return h.OnDiscover }),
		OnExamineVertex: chain(vs, func(h Visitor[V, E]) func(V) { return h.OnExamineVertex }),
		OnExamineEdge:   chain(vs, func(h Visitor[V, E]) func(E) { return h.OnExamineEdge }),
		OnTreeEdge:      chain(vs, func(h Visitor[V, E]) func(E) { return h.OnTreeEdge }),
		OnNonTreeEdge:   chain(vs, func(h Visitor[V, E]) func(E) { return h.OnNonTreeEdge }),
		OnBackEdge:      chain(vs, func(h Visitor[V, E]) func(E) { return h.OnBackEdge }),
		OnGrayTarget:    chain(vs, func(h Visitor[V, E]) func(V) { return h.OnGrayTarget }),
		OnBlackTarget:   chain(vs, func(h Visitor[V, E]) func(V) { return h.OnBlackTarget }),
		OnFinishEdge:    chain(vs, func(h Visitor[V, E]) func(E) { return h.OnFinishEdge }),
		OnFinish:        chain(vs, func(h Visitor[V, E]) func(V) { return h.OnFinish }),
		OnOptimize:      chain(vs, func(h Visitor[V, E]) func(E) { return h.OnOptimize }),
	}
}

// chain collects the non-nil hooks selected by pick; nil when there are none.
func chain[H any, T any](vs []H, pick func(H) func(T)) func(T) {
	var fns []func(T)
	for _, h := range vs {
		if fn := pick(h); fn != nil {
			fns = append(fns, fn)
		}
	}
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func(x T) {
		for _, fn := range fns {
			fn(x)
		}
	}
}
