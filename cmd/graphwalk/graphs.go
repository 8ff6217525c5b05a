package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/internal/problem"
	"github.com/katalvlaran/graphwalk/visit"
)

// noPath is printed when no answer exists.
const noPath = "-1"

func graphOptions(d problem.Document) []core.Option {
	if d.Directed {
		return []core.Option{core.WithDirected()}
	}
	return nil
}

func pairs(d problem.Document) []core.Pair[int] {
	out := make([]core.Pair[int], len(d.Edges))
	for i, e := range d.Edges {
		out[i] = core.P(e.From, e.To)
	}
	return out
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Fewest-hop path between two vertices",
		Long: `Reads "n m s f" followed by m undirected edges over vertices 0..n-1 and
prints the number of hops and the path from s to f, or -1 when f is
unreachable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := a.documents(cmd, single(problem.ReadPath))
			if err != nil {
				return err
			}
			return a.timed(cmd, func() error {
				answers := make([][]int, 0, len(docs))
				for _, d := range docs {
					g := core.NewListGraph(d.Vertices, pairs(d), graphOptions(d)...)
					parents := visit.NewParentVisitor[int, core.Pair[int]]()
					v, flush := traced(a, cmd.Name(), parents.Visitor())
					err := bfs.Run(g, d.Start, v, bfs.WithContext(cmd.Context()))
					flush()
					if err != nil {
						return err
					}
					answers = append(answers, parents.Path(d.Start, d.Finish))
				}
				return emit(cmd, func(w *bufio.Writer) {
					for _, path := range answers {
						if len(path) == 0 {
							fmt.Fprintln(w, noPath)
							continue
						}
						fmt.Fprintln(w, len(path)-1)
						fmt.Fprintln(w, joinInts(path))
					}
				})
			})
		},
	}
}

// edgeList reads "n m" edge lists over vertices 1..n.
func edgeList(directed bool) func(io.Reader) ([]problem.Document, error) {
	return single(func(r io.Reader) (problem.Document, error) {
		return problem.ReadEdgeList(r, 1, directed)
	})
}

func newToposortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toposort",
		Short: "Topological order of a directed graph",
		Long: `Reads "n m" followed by m directed edges over vertices 1..n and prints a
topological order, or -1 when the graph has a cycle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := a.documents(cmd, edgeList(true))
			if err != nil {
				return err
			}
			return a.timed(cmd, func() error {
				type answer struct {
					order []int
					ok    bool
				}
				answers := make([]answer, 0, len(docs))
				for _, d := range docs {
					g := core.NewListGraph(d.Vertices, pairs(d), core.WithDirected())
					sorter := dfs.NewTopologicalSorter[int, core.Pair[int]]()
					v, flush := traced(a, cmd.Name(), sorter.Visitor())
					err := dfs.Forest(g, v, dfs.WithContext(cmd.Context()))
					flush()
					if err != nil {
						return err
					}
					order, ok := sorter.Order()
					answers = append(answers, answer{order: order, ok: ok})
				}
				return emit(cmd, func(w *bufio.Writer) {
					for _, ans := range answers {
						if !ans.ok {
							fmt.Fprintln(w, noPath)
							continue
						}
						fmt.Fprintln(w, joinInts(ans.order))
					}
				})
			})
		},
	}
}

func newSCCCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scc",
		Short: "Strongly connected components",
		Long: `Reads "n m" followed by m directed edges over vertices 1..n and prints
the number of strongly connected components, then the component id of
every vertex in vertex order. Ids follow a topological order of the
condensation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := a.documents(cmd, edgeList(true))
			if err != nil {
				return err
			}
			return a.timed(cmd, func() error {
				type answer struct {
					count int
					ids   []int
				}
				answers := make([]answer, 0, len(docs))
				for _, d := range docs {
					g := core.NewListGraph(d.Vertices, pairs(d), core.WithDirected())
					comp, count, err := dfs.StronglyConnected[int, core.Pair[int]](g, dfs.WithContext(cmd.Context()))
					if err != nil {
						return err
					}
					ids := make([]int, len(d.Vertices))
					for i, v := range g.Vertices() {
						ids[i] = comp[v]
					}
					answers = append(answers, answer{count: count, ids: ids})
				}
				return emit(cmd, func(w *bufio.Writer) {
					for _, ans := range answers {
						fmt.Fprintln(w, ans.count)
						fmt.Fprintln(w, joinInts(ans.ids))
					}
				})
			})
		},
	}
}

func newBridgesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bridges",
		Short: "Bridges of an undirected multigraph",
		Long: `Reads "n m" followed by m undirected edges over vertices 1..n, numbered
1..m in input order, and prints the number of bridges followed by their
numbers in ascending order. Parallel edges are never bridges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := a.documents(cmd, edgeList(false))
			if err != nil {
				return err
			}
			return a.timed(cmd, func() error {
				answers := make([][]core.Numbered[int], 0, len(docs))
				for _, d := range docs {
					edges := make([]core.Numbered[int], len(d.Edges))
					for i, e := range d.Edges {
						edges[i] = core.Numbered[int]{Number: uint32(i + 1), First: e.From, Second: e.To}
					}
					g := core.NewMatrixGraph(d.Vertices, edges)
					finder := dfs.NewBridgesFinder[int, core.Numbered[int]]()
					v, flush := traced(a, cmd.Name(), finder.Visitor())
					err := dfs.Forest(g, v, dfs.WithSkipParent(), dfs.WithContext(cmd.Context()))
					flush()
					if err != nil {
						return err
					}
					answers = append(answers, finder.SortedBridges(func(x, y core.Numbered[int]) int {
						return cmp.Compare(x.Number, y.Number)
					}))
				}
				return emit(cmd, func(w *bufio.Writer) {
					for _, bridges := range answers {
						fmt.Fprintln(w, len(bridges))
						for _, b := range bridges {
							fmt.Fprintln(w, b.Number)
						}
					}
				})
			})
		},
	}
}
