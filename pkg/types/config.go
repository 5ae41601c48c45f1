// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings for fetching a corpus over HTTP.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "graph-poet/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retries on 429 and 503 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CorpusConfig selects where corpus lines come from. When more than one
// field is set, Name wins over URL, and URL wins over Path.
type CorpusConfig struct {
	HTTPConfig `yaml:",inline"`

	// Path is a local text file; "-" reads standard input.
	Path string `json:"path" yaml:"path"`

	// URL is a remote plain-text corpus.
	URL string `json:"url" yaml:"url"`

	// Name refers to a corpus previously imported into the library.
	Name string `json:"name" yaml:"name"`

	// LibraryDir is the directory holding the corpus library database.
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// Token is an optional bearer token for URL sources.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// IsEmpty reports whether no corpus source is configured.
func (c CorpusConfig) IsEmpty() bool {
	return c.Path == "" && c.URL == "" && c.Name == ""
}

// OutputFormat selects how poems and graphs are printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// PoemConfig holds settings for poem generation output.
type PoemConfig struct {
	// Format selects the output format: text, json, or yaml.
	Format OutputFormat `json:"format" yaml:"format"`

	// Explain prints the bridge chosen for every adjacent input pair.
	Explain bool `json:"explain" yaml:"explain"`
}

// Config groups all settings for the graph-poet CLI.
type Config struct {
	Corpus CorpusConfig `json:"corpus" yaml:"corpus"`
	Poem   PoemConfig   `json:"poem" yaml:"poem"`
}
