package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>",
	Short: "Check a definition for syntax and determinism errors",
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
		fmt.Fprintf(cmd.OutOrStdout(), "Definition is valid! ✅ (%d states, %d transitions)\n", a.Size(), a.TransitionCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
