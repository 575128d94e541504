package main

import (
	"os"

	"github.com/aretw0/dpda"
	"github.com/aretw0/dpda/internal/cli"
	"github.com/aretw0/dpda/internal/presentation/tui"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run [definition]",
	Short: "Build an automaton and run it on input typed one character per line",
	Long: `Reads the automaton definition from the given file, or interactively
from stdin when no file is given, then reads input characters one per line.
A line starting with "." ends the run, as does a trap. The verdict is printed
at the end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		interactive := isTerminal(cmd.InOrStdin())
		opts := []cli.ConsoleOption{
			cli.WithPrompts(interactive),
			cli.WithConsoleLogger(app.Logger),
			cli.WithAutomatonOptions(app.AutomatonOptions()...),
		}
		if isTerminal(cmd.OutOrStdout()) {
			opts = append(opts, cli.WithProfile(termenv.ColorProfile()))
		}
		console := cli.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts...)

		var a *automaton.Automaton
		if len(args) > 0 {
			a, err = app.Load(args[0])
		} else {
			if interactive {
				tui.PrintBanner(cmd.OutOrStdout(), dpda.Version)
			}
			a, err = console.Build()
		}
		if err != nil {
			return err
		}

		app.ObserveVerdict(console.Run(cmd.Context(), a))
		return nil
	},
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
