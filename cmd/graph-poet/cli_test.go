// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/graph-poet/internal/corpus"
	"github.com/pdiddy/graph-poet/pkg/types"
)

// resetFlags restores every flag in the command tree to its default, since
// cobra keeps parsed values on the package-level commands between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and stdin, returning stdout,
// stderr, and the command error.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr strings.Builder
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCorpusConfigFromEnv(t *testing.T) {
	resetFlags(rootCmd)
	t.Setenv("GRAPH_POET_CORPUS_PATH", "from-env.txt")
	t.Setenv("GRAPH_POET_CORPUS_LIBRARY_DIR", "env-library")
	t.Setenv("GRAPH_POET_CORPUS_MAX_RETRIES", "7")

	initConfig()
	cfg := corpusConfig()

	assert.Equal(t, "from-env.txt", cfg.Path)
	assert.Equal(t, "env-library", cfg.LibraryDir)
	assert.Equal(t, 7, cfg.MaxRetries)
}

func TestCorpusConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("GRAPH_POET_CORPUS_PATH", "from-env.txt")
	corpusFile := filepath.Join(t.TempDir(), "flag.txt")
	require.NoError(t, os.WriteFile(corpusFile, []byte("a x b"), 0o644))

	stdout, _, err := runCLI(t, "", "poem", "--corpus", corpusFile, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a x b\n", stdout)
}

func TestCLIImportThenPoem(t *testing.T) {
	tmp := t.TempDir()
	lib := filepath.Join(tmp, "library")
	corpusFile := filepath.Join(tmp, "mugar.txt")
	require.NoError(t, os.WriteFile(corpusFile,
		[]byte("This is a test of the\nMugar Omni Theater sound system.\n"), 0o644))

	_, stderr, err := runCLI(t, "", "corpus", "import", "mugar", corpusFile, "--library-dir", lib)
	require.NoError(t, err)
	assert.Contains(t, stderr, "imported mugar (2 lines")

	stdout, _, err := runCLI(t, "", "poem", "--name", "mugar", "--library-dir", lib, "Test", "the", "system.")
	require.NoError(t, err)
	assert.Equal(t, "Test of the system.\n", stdout)

	stdout, _, err = runCLI(t, "", "bridge", "--name", "mugar", "--library-dir", lib, "TEST", "the")
	require.NoError(t, err)
	assert.Equal(t, "of (weight 1)\n", stdout)

	stdout, _, err = runCLI(t, "", "corpus", "list", "--json", "--library-dir", lib)
	require.NoError(t, err)
	var infos []types.CorpusInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "mugar", infos[0].Name)
	assert.Equal(t, 2, infos[0].Lines)

	_, _, err = runCLI(t, "", "corpus", "remove", "mugar", "--library-dir", lib)
	require.NoError(t, err)

	_, _, err = runCLI(t, "", "poem", "--name", "mugar", "--library-dir", lib, "Test", "the")
	assert.ErrorIs(t, err, corpus.ErrUnavailable)
}

func TestCLIMissingLibrary(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "never-created")

	_, _, err := runCLI(t, "", "poem", "--name", "anything", "--library-dir", lib, "a", "b")
	assert.ErrorIs(t, err, corpus.ErrUnavailable)

	_, statErr := os.Stat(lib)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLIGraphFromStdin(t *testing.T) {
	stdout, stderr, err := runCLI(t, "Hello, HELLO, hello, goodbye!\n", "graph", "--corpus", "-", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "graph stdin: 2 words, 2 edges")

	var snap types.GraphSnapshot
	require.NoError(t, json.Unmarshal([]byte(stdout), &snap))
	assert.Equal(t, "stdin", snap.Corpus)
	assert.Equal(t, []types.Edge{
		{From: "hello,", To: "goodbye!", Weight: 1},
		{From: "hello,", To: "hello,", Weight: 2},
	}, snap.Edges)
}

func TestCLINoCorpus(t *testing.T) {
	_, _, err := runCLI(t, "", "poem", "a", "b")
	assert.ErrorContains(t, err, "no corpus configured")
}
