package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/dpda/internal/cli"
	"github.com/aretw0/dpda/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dpda",
	Short: "dpda runs deterministic pushdown automata",
	Long: `dpda builds a deterministic pushdown automaton from a line-oriented
definition and feeds it input one character at a time, interactively, in
batch, or as sessions served over HTTP and MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
}

// newApp loads the config named by --config, applies --log-level and
// builds the shared dependencies.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	return cli.NewApp(cfg)
}
