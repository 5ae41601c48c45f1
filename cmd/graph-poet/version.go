package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of graph-poet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "graph-poet %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
