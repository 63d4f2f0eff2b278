package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/walknet/config"
)

var topologyHelp = map[string]string{
	config.KindWorkshop:     "six-node reference graph (n ignored)",
	config.KindLadder:       "i -> {i+1, i+2}, n >= 3",
	config.KindPath:         "0 -> 1 -> ... -> n-1, n >= 2",
	config.KindCycle:        "path closed back to 0, n >= 3",
	config.KindStar:         "hub 0 <-> leaves 1..n-1, n >= 2",
	config.KindComplete:     "every i -> every j != i, n >= 1",
	config.KindRandomSparse: "i -> j with probability p, seeded",
}

func newTopologiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topologies",
		Short: "List the built-in topology kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tSHAPE")
			for _, k := range config.Kinds {
				fmt.Fprintf(tw, "%s\t%s\n", k, topologyHelp[k])
			}
			return tw.Flush()
		},
	}
}
