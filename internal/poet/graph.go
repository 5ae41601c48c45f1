// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package poet builds a word-adjacency graph from corpus text and uses it
// to insert bridge words between adjacent words of an input phrase.
//
// A WordGraph is built once and never mutated afterwards, so a Poet may be
// shared by any number of goroutines.
package poet

import (
	"sort"
	"strings"

	"github.com/pdiddy/graph-poet/pkg/types"
)

// WordGraph maps a lowercase source word to its lowercase successors and
// the number of times each successor immediately follows it in the corpus.
// A missing entry means weight 0.
type WordGraph struct {
	adj map[string]map[string]int
}

// Build tokenizes lines on whitespace and counts every adjacent token pair.
// Lines are concatenated into a single token stream, so the last word of
// one line is adjacent to the first word of the next. Fewer than two tokens
// yields an empty graph.
func Build(lines []string) *WordGraph {
	g := &WordGraph{adj: make(map[string]map[string]int)}

	prev := ""
	havePrev := false
	for _, line := range lines {
		for _, tok := range strings.Fields(line) {
			word := strings.ToLower(tok)
			if havePrev {
				g.add(prev, word)
			}
			prev, havePrev = word, true
		}
	}
	return g
}

func (g *WordGraph) add(from, to string) {
	nbrs, ok := g.adj[from]
	if !ok {
		nbrs = make(map[string]int)
		g.adj[from] = nbrs
	}
	nbrs[to]++
}

// Weight returns the number of times w1 is immediately followed by w2.
// Both words are compared case-insensitively.
func (g *WordGraph) Weight(w1, w2 string) int {
	return g.adj[strings.ToLower(w1)][strings.ToLower(w2)]
}

// HasSource reports whether w has at least one outgoing edge.
func (g *WordGraph) HasSource(w string) bool {
	_, ok := g.adj[strings.ToLower(w)]
	return ok
}

// Successors returns a copy of the outgoing edges of w, or nil if w has none.
func (g *WordGraph) Successors(w string) map[string]int {
	nbrs, ok := g.adj[strings.ToLower(w)]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(nbrs))
	for to, n := range nbrs {
		out[to] = n
	}
	return out
}

// Words returns every distinct vertex, sources and destinations alike,
// in lexicographic order.
func (g *WordGraph) Words() []string {
	seen := make(map[string]struct{}, len(g.adj))
	for from, nbrs := range g.adj {
		seen[from] = struct{}{}
		for to := range nbrs {
			seen[to] = struct{}{}
		}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// EdgeCount returns the number of distinct (from, to) pairs.
func (g *WordGraph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}
	return n
}

// Edges returns all edges sorted by From, then To.
func (g *WordGraph) Edges() []types.Edge {
	edges := make([]types.Edge, 0, g.EdgeCount())
	for from, nbrs := range g.adj {
		for to, n := range nbrs {
			edges = append(edges, types.Edge{From: from, To: to, Weight: n})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
