package main

import (
	"bufio"

	"github.com/aretw0/dpda/internal/cli"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <definition> [inputs...]",
	Short: "Print the verdict for each input",
	Long: `Runs every input from the initial configuration and prints one line per
input: the input, the final status and the verdict, separated by tabs. Inputs
are read from stdin, one per line, when none are given as arguments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		a, err := app.Load(args[0])
		if err != nil {
			return err
		}

		inputs := args[1:]
		if len(inputs) == 0 {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				inputs = append(inputs, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "failed to read inputs")
			}
		}

		accepted := cli.Check(a, inputs, cmd.OutOrStdout())
		app.Logger.Info("check finished", "inputs", len(inputs), "accepted", accepted)

		strict, _ := cmd.Flags().GetBool("strict")
		if strict && accepted != len(inputs) {
			return errors.Newf("%d of %d inputs rejected", len(inputs)-accepted, len(inputs))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("strict", false, "Exit with an error if any input is rejected")
}
