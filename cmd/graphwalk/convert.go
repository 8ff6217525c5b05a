package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/internal/problem"
)

const (
	layoutPath     = "path"
	layoutEdges    = "edges"
	layoutWeighted = "weighted"
	layoutTiles    = "tiles"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		layout   string
		base     int
		directed bool
		side     int
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite token input as YAML documents",
		Long: `Reads token input in the given layout and writes the equivalent YAML
stream, suitable for --format yaml.

Layouts:
  path      n m s f + m pairs (path command)
  edges     n m + m pairs over base..base+n-1 (toposort, scc, bridges)
  weighted  k graphs of n m + m triples + start (dijkstra)
  tiles     side² tiles (puzzle)`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.format != formatTokens {
				return errorf("convert reads tokens only, got --format %q", a.format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var read func(io.Reader) ([]problem.Document, error)
			switch layout {
			case layoutPath:
				read = single(problem.ReadPath)
			case layoutEdges:
				read = single(func(r io.Reader) (problem.Document, error) {
					return problem.ReadEdgeList(r, base, directed)
				})
			case layoutWeighted:
				read = problem.ReadWeighted
			case layoutTiles:
				read = single(func(r io.Reader) (problem.Document, error) {
					return problem.ReadTiles(r, side*side)
				})
			default:
				return errorf("unknown --layout %q", layout)
			}
			docs, err := a.documents(cmd, read)
			if err != nil {
				return err
			}
			return problem.EncodeYAML(cmd.OutOrStdout(), docs...)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", layoutEdges, "Token layout: path, edges, weighted, tiles")
	cmd.Flags().IntVar(&base, "base", 1, "First vertex id for the edges layout")
	cmd.Flags().BoolVar(&directed, "directed", false, "Mark edges-layout graphs as directed")
	cmd.Flags().IntVar(&side, "side", 3, "Board side for the tiles layout")
	return cmd
}
