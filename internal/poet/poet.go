// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package poet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/graph-poet/internal/corpus"
	"github.com/pdiddy/graph-poet/pkg/types"
)

// Poet owns one immutable WordGraph and generates poems against it.
type Poet struct {
	graph  *WordGraph
	corpus string
}

// New reads every line from src and builds the graph. If the source cannot
// produce its lines the error wraps corpus.ErrUnavailable and no Poet is
// returned.
func New(ctx context.Context, src corpus.Source) (*Poet, error) {
	lines, err := src.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus %s: %w", src.Name(), err)
	}
	return &Poet{graph: Build(lines), corpus: src.Name()}, nil
}

// NewFromLines builds a Poet directly from in-memory corpus lines.
func NewFromLines(lines []string) *Poet {
	return &Poet{graph: Build(lines), corpus: "inline"}
}

// Graph returns the underlying graph. Callers must treat it as read-only.
func (p *Poet) Graph() *WordGraph {
	return p.graph
}

// Poem generates a poem for input. See the package-level Poem.
func (p *Poet) Poem(input string) string {
	return Poem(p.graph, input)
}

// Bridge looks up the bridge word between w1 and w2.
func (p *Poet) Bridge(w1, w2 string) (string, bool) {
	return FindBridge(p.graph, w1, w2)
}

// Generate returns the poem together with its per-pair trace.
func (p *Poet) Generate(input string) types.PoemResult {
	return types.PoemResult{
		Input: input,
		Poem:  Poem(p.graph, input),
		Steps: Explain(p.graph, input),
	}
}

// Snapshot returns the full edge list of the graph.
func (p *Poet) Snapshot() types.GraphSnapshot {
	return types.GraphSnapshot{
		Corpus: p.corpus,
		Words:  len(p.graph.Words()),
		Edges:  p.graph.Edges(),
	}
}

// WriteYAML writes the graph snapshot to w as YAML.
func (p *Poet) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(p.Snapshot())
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes the graph snapshot to w as indented JSON.
func (p *Poet) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.Snapshot()); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
