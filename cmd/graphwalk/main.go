// Command graphwalk runs the graphwalk traversals over problems read from
// stdin or a file, printing answers in a compact token format.
//
// Usage:
//
//	graphwalk path      < path.txt
//	graphwalk toposort  --input dag.yaml --format yaml
//	graphwalk bridges   --log-level debug --trace < graph.txt
//	graphwalk puzzle    --heuristic linear < board.txt
//	graphwalk convert   --layout weighted < graphs.txt > graphs.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	root, a := newRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		a.log().Error("graphwalk failed", "err", err)
		os.Exit(1)
	}
}
