// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Edge is one weighted adjacency in a word graph: From is immediately
// followed by To exactly Weight times in the corpus.
type Edge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int    `json:"weight" yaml:"weight"`
}

// GraphSnapshot is a read-only dump of a word graph for inspection.
type GraphSnapshot struct {
	// Corpus names the source the graph was built from.
	Corpus string `json:"corpus" yaml:"corpus"`

	// Words is the number of distinct vertices.
	Words int `json:"words" yaml:"words"`

	// Edges lists every edge sorted by From, then To.
	Edges []Edge `json:"edges" yaml:"edges"`
}

// BridgeStep records the bridge lookup for one adjacent pair of input words.
type BridgeStep struct {
	// From and To are the input words in their original case.
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`

	// Bridge is the inserted lowercase word, empty when none was found.
	Bridge string `json:"bridge,omitempty" yaml:"bridge,omitempty"`

	// Weight is the first-hop weight of the chosen bridge (0 when none).
	Weight int `json:"weight" yaml:"weight"`
}

// PoemResult is a generated poem with its per-pair trace.
type PoemResult struct {
	Input string       `json:"input" yaml:"input"`
	Poem  string       `json:"poem" yaml:"poem"`
	Steps []BridgeStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// CorpusInfo describes a corpus stored in the library.
type CorpusInfo struct {
	Name       string `json:"name" yaml:"name"`
	Origin     string `json:"origin" yaml:"origin"`
	Lines      int    `json:"lines" yaml:"lines"`
	ImportedAt string `json:"imported_at" yaml:"imported_at"`
}
