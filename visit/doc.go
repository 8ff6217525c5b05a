// Package visit defines the hook set through which every graphwalk traversal
// engine reports progress, together with the visitors that are shared across
// engines.
//
// What
//
//   - Visitor: a struct of optional callbacks (OnDiscover, OnTreeEdge, …).
//     A nil callback is a no-op, so a visitor only sets the hooks it needs.
//   - Color: the White/Gray/Black three-colour scheme used by BFS and DFS.
//   - ParentVisitor: records the traversal tree and rebuilds paths.
//   - Enumerator: lists vertices in discovery order.
//   - Recorder: captures every hook call as an Event, for tracing and tests.
//
// Hook points
//
//	OnInitialize(v)   once per vertex before a run
//	OnStart(v)        once, for the source of a weighted search
//	OnDiscover(v)     v seen for the first time (turns Gray)
//	OnExamineVertex(v) v taken from the frontier
//	OnExamineEdge(e)  every edge leaving the examined vertex
//	OnTreeEdge(e)     e leads to an undiscovered vertex
//	OnNonTreeEdge(e)  BFS: e leads to an already discovered vertex
//	OnBackEdge(e)     DFS: e leads to an already discovered vertex
//	OnGrayTarget(v)   that vertex is still open (a cycle in DFS)
//	OnBlackTarget(v)  that vertex is finished
//	OnFinishEdge(e)   DFS: the subtree reached through tree edge e is done
//	OnFinish(v)       v and all its edges are processed (turns Black)
//	OnOptimize(e)     weighted search found a strictly better route via e
//
// Several visitors can observe one run through Merge.
package visit
