// walknet trains a reinforced random-walk network and reports the learned
// transition weights.
//
// Usage:
//
//	walknet train [--config=<file>] [--topology=<kind> --n=<n>] [--goal=<id>] [--trials=<n>]
//	walknet topologies
//	walknet config
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "walknet",
		Short: "Train goal-seeking random walks on a directed graph",
		Long: "walknet samples bounded random walks from a start node and reinforces\n" +
			"the edges of walks that reach the goal, penalising the rest.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}
	root.AddCommand(newTrainCmd())
	root.AddCommand(newTopologiesCmd())
	root.AddCommand(newConfigCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
