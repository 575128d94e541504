package main

import (
	"fmt"

	"github.com/aretw0/dpda/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <definition>",
	Short: "Print a summary and the transition table of an automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		a, err := app.Load(args[0])
		if err != nil {
			return err
		}

		if raw, _ := cmd.Flags().GetBool("markdown"); raw {
			fmt.Fprint(cmd.OutOrStdout(), tui.Markdown(a))
			return nil
		}

		render := tui.NewPlainRenderer()
		if isTerminal(cmd.OutOrStdout()) {
			render = tui.NewRenderer()
		}
		out, err := tui.Describe(a, render)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("markdown", false, "Print the raw markdown instead of rendering it")
}
