package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/internal/problem"
	"github.com/katalvlaran/graphwalk/visit"
)

const (
	formatTokens = "tokens"
	formatYAML   = "yaml"
)

var errUsage = errors.New("graphwalk: invalid usage")

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

// app carries the global flags and the logger built from them.
type app struct {
	input    string
	format   string
	logLevel string
	trace    bool
	logger   *slog.Logger
}

// newRootCmd builds the command tree. The returned app is populated once
// the persistent pre-run has parsed the global flags.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "graphwalk",
		Short: "Run graph traversals over problems read from stdin",
		Long: `graphwalk reads a graph problem, runs one traversal and prints the answer.

Input is whitespace-separated integers by default, or YAML documents with
--format yaml (see "graphwalk convert").

Commands:
  path      fewest-hop path between two vertices (BFS)
  toposort  topological order of a directed graph (DFS)
  scc       strongly connected components (Kosaraju)
  bridges   bridges of an undirected multigraph (Tarjan low-link)
  dijkstra  single-source shortest distances
  puzzle    solve a sliding puzzle (A*)
  convert   rewrite token input as YAML`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.input, "input", "i", "",
		"Read the problem from this file instead of stdin")
	root.PersistentFlags().StringVar(&a.format, "format", formatTokens,
		"Input format: tokens, yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn",
		"Log level on stderr: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false,
		"Log every traversal hook at debug level")

	root.AddCommand(
		newPathCmd(a),
		newToposortCmd(a),
		newSCCCmd(a),
		newBridgesCmd(a),
		newDijkstraCmd(a),
		newPuzzleCmd(a),
		newConvertCmd(a),
	)
	return root, a
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("%w: --log-level %q", errUsage, a.logLevel)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	switch a.format {
	case formatTokens, formatYAML:
	default:
		return fmt.Errorf("%w: --format %q", errUsage, a.format)
	}
	return nil
}

// log returns the configured logger, or a stderr logger when flag parsing
// failed before setup ran.
func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return a.logger
}

func (a *app) open(cmd *cobra.Command) (io.ReadCloser, error) {
	if a.input == "" || a.input == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(a.input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// documents reads the problems for one command, from tokens or YAML.
func (a *app) documents(cmd *cobra.Command, tokens func(io.Reader) ([]problem.Document, error)) ([]problem.Document, error) {
	rc, err := a.open(cmd)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var docs []problem.Document
	if a.format == formatYAML {
		docs, err = problem.DecodeYAML(rc)
	} else {
		docs, err = tokens(rc)
	}
	if err != nil {
		return nil, err
	}
	for i, d := range docs {
		a.log().Debug("problem parsed", "command", cmd.Name(), "doc", i+1,
			"vertices", len(d.Vertices), "edges", len(d.Edges))
	}
	return docs, nil
}

// single adapts a one-document token reader.
func single(read func(io.Reader) (problem.Document, error)) func(io.Reader) ([]problem.Document, error) {
	return func(r io.Reader) ([]problem.Document, error) {
		d, err := read(r)
		if err != nil {
			return nil, err
		}
		return []problem.Document{d}, nil
	}
}

// timed logs how long run took at debug level.
func (a *app) timed(cmd *cobra.Command, run func() error) error {
	start := time.Now()
	err := run()
	a.log().Debug("run finished", "command", cmd.Name(), "elapsed", time.Since(start), "ok", err == nil)
	return err
}

// traced merges a hook recorder into v when --trace is set. The returned
// flush logs the recorded events.
func traced[V comparable, E any](a *app, name string, v visit.Visitor[V, E]) (visit.Visitor[V, E], func()) {
	if !a.trace {
		return v, func() {}
	}
	rec := &visit.Recorder[V, E]{}
	return visit.Merge(v, rec.Visitor()), func() {
		for _, ev := range rec.Events {
			a.log().Debug("hook", "command", name, "event", ev.String())
		}
	}
}

// emit buffers one command's output and flushes it.
func emit(cmd *cobra.Command, write func(w *bufio.Writer)) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	write(w)
	return w.Flush()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
