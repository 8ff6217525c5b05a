package visit

import "fmt"

// Enumerator lists vertices in the order they are discovered.
type Enumerator[V comparable, E any] struct {
	vertices []V
}

// Visitor returns the hooks to hand to a traversal engine.
func (en *Enumerator[V, E]) Visitor() Visitor[V, E] {
	return Visitor[V, E]{
		OnDiscover: func(v V) { en.vertices = append(en.vertices, v) },
	}
}

// List returns the discovered vertices.
func (en *Enumerator[V, E]) List() []V { return en.vertices }

// Reset empties the list.
func (en *Enumerator[V, E]) Reset() { en.vertices = en.vertices[:0] }

// Hook names a Visitor callback.
type Hook uint8

const (
	HookInitialize Hook = iota
	HookStart
	HookDiscover
	HookExamineVertex
	HookExamineEdge
	HookTreeEdge
	HookNonTreeEdge
	HookBackEdge
	HookGrayTarget
	HookBlackTarget
	HookFinishEdge
	HookFinish
	HookOptimize
)

var hookNames = [...]string{
	HookInitialize:    "initialize",
	HookStart:         "start",
	HookDiscover:      "discover",
	HookExamineVertex: "examine_vertex",
	HookExamineEdge:   "examine_edge",
	HookTreeEdge:      "tree_edge",
	HookNonTreeEdge:   "non_tree_edge",
	HookBackEdge:      "back_edge",
	HookGrayTarget:    "gray_target",
	HookBlackTarget:   "black_target",
	HookFinishEdge:    "finish_edge",
	HookFinish:        "finish",
	HookOptimize:      "optimize",
}

func (h Hook) String() string {
	if int(h) < len(hookNames) {
		return hookNames[h]
	}
	return fmt.Sprintf("hook(%d)", uint8(h))
}

// Event is one recorded hook call. Vertex is set for vertex hooks, Edge for
// edge hooks.
type Event[V comparable, E any] struct {
	Hook   Hook
	Vertex V
	Edge   E
}

func (ev Event[V, E]) String() string {
	switch ev.Hook {
	case HookExamineEdge, HookTreeEdge, HookNonTreeEdge, HookBackEdge, HookFinishEdge, HookOptimize:
		return fmt.Sprintf("%s %v", ev.Hook, ev.Edge)
	default:
		return fmt.Sprintf("%s %v", ev.Hook, ev.Vertex)
	}
}

// Recorder captures every hook call in order. Initialize events are skipped
// unless WithInitialize is set, since they are one per vertex.
type Recorder[V comparable, E any] struct {
	Events         []Event[V, E]
	WithInitialize bool
}

// Visitor returns hooks that append to r.Events.
func (r *Recorder[V, E]) Visitor() Visitor[V, E] {
	vtx := func(h Hook) func(V) {
		return func(v V) { r.Events = append(r.Events, Event[V, E]{Hook: h, Vertex: v}) }
	}
	edge := func(h Hook) func(E) {
		return func(e E) { r.Events = append(r.Events, Event[V, E]{Hook: h, Edge: e}) }
	}
	v := Visitor[V, E]{
		OnStart:         vtx(HookStart),
		OnDiscover:      vtx(HookDiscover),
		OnExamineVertex: vtx(HookExamineVertex),
		OnExamineEdge:   edge(HookExamineEdge),
		OnTreeEdge:      edge(HookTreeEdge),
		OnNonTreeEdge:   edge(HookNonTreeEdge),
		OnBackEdge:      edge(HookBackEdge),
		OnGrayTarget:    vtx(HookGrayTarget),
		OnBlackTarget:   vtx(HookBlackTarget),
		OnFinishEdge:    edge(HookFinishEdge),
		OnFinish:        vtx(HookFinish),
		OnOptimize:      edge(HookOptimize),
	}
	if r.WithInitialize {
		v.OnInitialize = vtx(HookInitialize)
	}
	return v
}

// Strings renders the recorded events, one per entry.
func (r *Recorder[V, E]) Strings() []string {
	out := make([]string, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.String()
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder[V, E]) Reset() { r.Events = r.Events[:0] }
