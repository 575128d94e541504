package main

import (
	"fmt"

	"github.com/aretw0/dpda/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <definition> [input]",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart of the automaton. When an input is given it is
read first and the state the run ends in is highlighted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		a, err := app.Load(args[0])
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if len(args) > 1 {
			if _, err := a.ReadString(args[1]); err != nil {
				return err
			}
			overlay = graph.OverlayOf(a)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(a, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
