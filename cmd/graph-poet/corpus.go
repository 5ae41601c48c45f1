// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/graph-poet/internal/corpus"
	"github.com/pdiddy/graph-poet/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the local corpus library (import, list, remove, export)",
	Long: `Corpus manages a local SQLite library of named corpora. Imported corpora
can then be used with --name instead of re-reading a file or URL. Only the
corpus text is stored; word graphs are rebuilt on every run.`,
}

// --- import subcommand ---

var corpusImportCmd = &cobra.Command{
	Use:   "import <name> [file]",
	Short: "Import a corpus from a file, stdin (\"-\"), or --url",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCorpusImport,
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	cfg := corpusConfig()
	cfg.Name = ""
	if len(args) == 2 {
		cfg.Path, cfg.URL = args[1], ""
	}

	src, err := corpus.Open(cfg, cmd.InOrStdin())
	if err != nil {
		return err
	}

	store, err := corpus.OpenStore(cfg.LibraryDir)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Import(context.Background(), args[0], src, cmd.ErrOrStderr())
	return err
}

// --- list subcommand ---

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpora in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := corpus.OpenStore(corpusConfig().LibraryDir)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.List(context.Background())
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatCorpusList(cmd.OutOrStdout(), infos, jsonOutput)
	},
}

func formatCorpusList(w io.Writer, infos []types.CorpusInfo, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Fprintln(w, "No corpora imported.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-8s  %-20s  %s\n", "Name", "Lines", "Imported", "Origin")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, info := range infos {
		origin := info.Origin
		if len(origin) > 40 {
			origin = "..." + origin[len(origin)-37:]
		}
		fmt.Fprintf(w, "%-20s  %-8d  %-20s  %s\n", info.Name, info.Lines, info.ImportedAt, origin)
	}
	fmt.Fprintf(w, "\n%d corpora\n", len(infos))
	return nil
}

// --- remove subcommand ---

var corpusRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a corpus from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := corpus.OpenStore(corpusConfig().LibraryDir)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Remove(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "removed %s\n", args[0])
		return nil
	},
}

// --- export subcommand ---

var corpusExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library manifest to YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := corpus.OpenStore(corpusConfig().LibraryDir)
		if err != nil {
			return err
		}
		defer store.Close()

		var path string
		switch format {
		case "yaml", "":
			path, err = store.ExportYAML(context.Background())
		case "json":
			path, err = store.ExportJSON(context.Background())
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

func init() {
	corpusListCmd.Flags().Bool("json", false, "output as JSON")
	corpusExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusRemoveCmd)
	corpusCmd.AddCommand(corpusExportCmd)

	rootCmd.AddCommand(corpusCmd)
}
