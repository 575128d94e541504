package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dpda"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dpda",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dpda version %s\n", strings.TrimSpace(dpda.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
