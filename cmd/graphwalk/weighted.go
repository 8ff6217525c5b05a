package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/astar"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/internal/problem"
	"github.com/katalvlaran/graphwalk/puzzle"
)

// unreachable is printed for vertices Dijkstra never reaches.
const unreachable = 2009000999

type wedge = core.Weighted[int, int]

func newDijkstraCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dijkstra",
		Short: "Single-source shortest distances",
		Long: `Reads k, then k blocks of "n m", m undirected weighted edges "a b w" over
vertices 0..n-1 and a start vertex. Prints one line per block with the
distance to every vertex, 2009000999 for unreachable ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			docs, err := a.documents(cmd, problem.ReadWeighted)
			if err != nil {
				return err
			}
			return a.timed(cmd, func() error {
				lines := make([][]int, 0, len(docs))
				for _, d := range docs {
					edges := make([]wedge, len(d.Edges))
					for i, e := range d.Edges {
						edges[i] = wedge{First: e.From, Second: e.To, Weight: e.Weight}
					}
					g := core.NewListGraph(d.Vertices, edges, graphOptions(d)...)
					dv := dijkstra.NewDistanceVisitor[int, int, wedge]()
					v, flush := traced(a, cmd.Name(), dv.Visitor())
					dist, err := dijkstra.Run[int, int](g, d.Start, v, dijkstra.WithContext(cmd.Context()))
					flush()
					if err != nil {
						return err
					}
					line := make([]int, len(d.Vertices))
					for i, u := range d.Vertices {
						if w, ok := dist[u]; ok {
							line[i] = w
						} else {
							line[i] = unreachable
						}
					}
					lines = append(lines, line)
				}
				return emit(cmd, func(w *bufio.Writer) {
					for _, line := range lines {
						fmt.Fprintln(w, joinInts(line))
					}
				})
			})
		},
	}
}

// heuristics maps --heuristic values to puzzle heuristics.
var heuristics = map[string]astar.Heuristic[puzzle.State, int]{
	"displaced": puzzle.Displaced,
	"manhattan": puzzle.Manhattan,
	"empty":     puzzle.EmptyDistance,
	"corner":    puzzle.Corner,
	"linear":    puzzle.LinearConflict,
}

// heuristic resolves a name, or a "convex:name=coef,name=coef" blend.
func heuristic(name string) (astar.Heuristic[puzzle.State, int], error) {
	if h, ok := heuristics[name]; ok {
		return h, nil
	}
	blend, found := strings.CutPrefix(name, "convex:")
	if !found {
		return nil, fmt.Errorf("%w: unknown heuristic %q", errUsage, name)
	}
	var (
		hs    []astar.Heuristic[puzzle.State, int]
		coefs []int
	)
	for _, term := range strings.Split(blend, ",") {
		name, coef, ok := strings.Cut(term, "=")
		h, known := heuristics[name]
		if !ok || !known {
			return nil, fmt.Errorf("%w: bad convex term %q", errUsage, term)
		}
		c, err := strconv.Atoi(coef)
		if err != nil {
			return nil, fmt.Errorf("%w: bad coefficient in %q", errUsage, term)
		}
		hs = append(hs, h)
		coefs = append(coefs, c)
	}
	return astar.Convex(hs, coefs)
}

func newPuzzleCmd(a *app) *cobra.Command {
	var (
		side          int
		heuristicName string
		maxExpansions int
	)
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Solve a sliding puzzle with A*",
		Long: `Reads side² tiles row by row (0 for the blank) and prints the number of
moves followed by the moves as letters naming where the blank goes
(U, D, L, R), or -1 when the board cannot be solved.

Heuristics: displaced, manhattan, empty, corner, linear, or a blend such as
convex:manhattan=1,empty=1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := heuristic(heuristicName)
			if err != nil {
				return err
			}
			docs, err := a.documents(cmd, single(func(r io.Reader) (problem.Document, error) {
				return problem.ReadTiles(r, side*side)
			}))
			if err != nil {
				return err
			}
			return a.timed(cmd, func() error {
				type answer struct {
					moves  []puzzle.Move
					solved bool
				}
				answers := make([]answer, 0, len(docs))
				for _, d := range docs {
					board, err := puzzle.New(side, d.Tiles)
					if err != nil {
						return err
					}
					moves, err := puzzle.Solve(board, h,
						astar.WithContext(cmd.Context()), astar.WithMaxExpansions(maxExpansions))
					switch {
					case errors.Is(err, puzzle.ErrUnsolvable):
						a.log().Info("board is not solvable", "board", board.Tiles())
						answers = append(answers, answer{})
					case err != nil:
						return err
					default:
						answers = append(answers, answer{moves: moves, solved: true})
					}
				}
				return emit(cmd, func(w *bufio.Writer) {
					for _, ans := range answers {
						if !ans.solved {
							fmt.Fprintln(w, noPath)
							continue
						}
						fmt.Fprintln(w, len(ans.moves))
						fmt.Fprintln(w, puzzle.Letters(ans.moves))
					}
				})
			})
		},
	}
	cmd.Flags().IntVar(&side, "side", 3, "Board side (2..4)")
	cmd.Flags().StringVar(&heuristicName, "heuristic", "manhattan",
		"A* heuristic: displaced, manhattan, empty, corner, linear, convex:name=coef,...")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0,
		"Give up after expanding this many boards (0 = no limit)")
	return cmd
}
