// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the graph-poet CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/graph-poet/internal/secrets"
	"github.com/pdiddy/graph-poet/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the graph-poet CLI.
var rootCmd = &cobra.Command{
	Use:   "graph-poet",
	Short: "Generate poems by bridging words through a corpus word graph",
	Long: `graph-poet builds a word-adjacency graph from a text corpus and uses it
to enrich a phrase: between every adjacent pair of input words it inserts the
bridge word w1 -> b -> w2 whose first hop occurs most often in the corpus.

The corpus comes from a local file (--corpus, "-" for stdin), a URL (--url),
or a named corpus imported into the local library (--name).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./graph-poet.yaml or ~/.config/graph-poet/config.yaml)")
	pf.String("corpus", "", `corpus text file ("-" reads stdin)`)
	pf.String("url", "", "fetch the corpus from this URL")
	pf.String("name", "", "use a corpus imported into the library")
	pf.String("library-dir", "library", "directory holding the corpus library database")
	pf.Duration("timeout", 0, "HTTP timeout for --url corpora (default 30s)")
	pf.Int("max-retries", 0, "retries on HTTP 429/503 (default 5)")
	pf.String("user-agent", "graph-poet/"+version, "User-Agent for --url corpora")
	pf.String("token", "", "bearer token for --url corpora (default: .secrets/corpus-token)")

	for key, flag := range map[string]string{
		"corpus.path":        "corpus",
		"corpus.url":         "url",
		"corpus.name":        "name",
		"corpus.library_dir": "library-dir",
		"corpus.timeout":     "timeout",
		"corpus.max_retries": "max-retries",
		"corpus.user_agent":  "user-agent",
		"corpus.token":       "token",
	} {
		viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("graph-poet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "graph-poet"))
		}
	}

	viper.SetEnvPrefix("GRAPH_POET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// corpusConfig assembles the corpus settings from flags, config file, and
// environment, in viper's precedence order.
func corpusConfig() types.CorpusConfig {
	return types.CorpusConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("corpus.timeout"),
			UserAgent:  viper.GetString("corpus.user_agent"),
			MaxRetries: viper.GetInt("corpus.max_retries"),
		},
		Path:       viper.GetString("corpus.path"),
		URL:        viper.GetString("corpus.url"),
		Name:       viper.GetString("corpus.name"),
		LibraryDir: viper.GetString("corpus.library_dir"),
		Token:      loadedSecrets.Get(secrets.CorpusToken, viper.GetString("corpus.token")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
