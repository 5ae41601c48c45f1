// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the word graph built from the corpus",
	Long: `Graph builds the word graph from the configured corpus and prints every
edge with its weight, sorted by source then destination word. The dump is for
inspection only; graphs are always rebuilt from the corpus.`,
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	p, err := loadPoet(context.Background(), cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "yaml", "":
		return p.WriteYAML(out)
	case "json":
		return p.WriteJSON(out)
	case "text":
		for _, e := range p.Graph().Edges() {
			fmt.Fprintf(out, "%-24s -> %-24s %d\n", e.From, e.To, e.Weight)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

var bridgeCmd = &cobra.Command{
	Use:   "bridge <word1> <word2>",
	Short: "Look up the bridge word between two words",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPoet(context.Background(), cmd)
		if err != nil {
			return err
		}

		b, ok := p.Bridge(args[0], args[1])
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "no bridge between %q and %q\n", args[0], args[1])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (weight %d)\n", b, p.Graph().Weight(args[0], b))
		return nil
	},
}

func init() {
	graphCmd.Flags().String("format", "yaml", "output format: text, yaml, or json")

	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(bridgeCmd)
}
