// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/graph-poet/internal/corpus"
	"github.com/pdiddy/graph-poet/internal/poet"
	"github.com/pdiddy/graph-poet/pkg/types"
)

var poemCmd = &cobra.Command{
	Use:   "poem [words...]",
	Short: "Insert bridge words into a phrase",
	Long: `Poem builds the word graph from the configured corpus and prints the
input phrase with a bridge word inserted between every adjacent pair that has
one. Input words keep their case; bridge words are lowercase.

Use --explain to print the bridge chosen for each pair.`,
	Example: `  graph-poet poem --corpus mugar.txt Test the system.
  echo "Seek to explore" | graph-poet poem --corpus - Seek explore`,
	RunE: runPoem,
}

func runPoem(cmd *cobra.Command, args []string) error {
	p, err := loadPoet(context.Background(), cmd)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	format := types.OutputFormat(viper.GetString("poem.format"))
	return writePoem(cmd.OutOrStdout(), p.Generate(input), format, viper.GetBool("poem.explain"))
}

// loadPoet opens the configured corpus and builds the graph, reporting the
// graph size on stderr.
func loadPoet(ctx context.Context, cmd *cobra.Command) (*poet.Poet, error) {
	src, err := corpus.Open(corpusConfig(), cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	p, err := poet.New(ctx, src)
	if err != nil {
		return nil, err
	}
	g := p.Graph()
	fmt.Fprintf(cmd.ErrOrStderr(), "graph %s: %d words, %d edges\n", src.Name(), len(g.Words()), g.EdgeCount())
	return p, nil
}

func writePoem(w io.Writer, res types.PoemResult, format types.OutputFormat, explain bool) error {
	if !explain {
		res.Steps = nil
	}

	switch format {
	case types.OutputText, "":
		if explain {
			for _, s := range res.Steps {
				bridge := s.Bridge
				if bridge == "" {
					bridge = "-"
				}
				fmt.Fprintf(w, "%-20s %-20s %-20s %d\n", s.From, bridge, s.To, s.Weight)
			}
			fmt.Fprintln(w, strings.Repeat("-", 66))
		}
		fmt.Fprintln(w, res.Poem)
		return nil
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case types.OutputYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

func init() {
	poemCmd.Flags().String("format", "text", "output format: text, json, or yaml")
	poemCmd.Flags().Bool("explain", false, "show the bridge chosen for each adjacent pair")
	viper.BindPFlag("poem.format", poemCmd.Flags().Lookup("format"))
	viper.BindPFlag("poem.explain", poemCmd.Flags().Lookup("explain"))

	rootCmd.AddCommand(poemCmd)
}
