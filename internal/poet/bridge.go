// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package poet

import (
	"strings"

	"github.com/pdiddy/graph-poet/pkg/types"
)

// FindBridge returns the word b maximizing the weight of w1 -> b among all
// b with edges w1 -> b and b -> w2. The weight of b -> w2 does not take part
// in the choice. Ties go to the lexicographically smallest b. The second
// result is false when no two-hop path from w1 to w2 exists.
func FindBridge(g *WordGraph, w1, w2 string) (string, bool) {
	b, _, ok := findBridge(g, strings.ToLower(w1), strings.ToLower(w2))
	return b, ok
}

func findBridge(g *WordGraph, w1, w2 string) (string, int, bool) {
	first, ok := g.adj[w1]
	if !ok {
		return "", 0, false
	}

	best, bestWeight := "", 0
	for b, weight := range first {
		if g.adj[b][w2] == 0 {
			continue
		}
		if weight > bestWeight || (weight == bestWeight && b < best) {
			best, bestWeight = b, weight
		}
	}
	if bestWeight == 0 {
		return "", 0, false
	}
	return best, bestWeight, true
}

// Poem splits input on whitespace and inserts the bridge word, if any,
// between each adjacent pair. Input words keep their case; bridges are
// lowercase. Words are joined by single spaces.
func Poem(g *WordGraph, input string) string {
	words := strings.Fields(input)
	if len(words) < 2 {
		return strings.Join(words, " ")
	}

	out := make([]string, 0, 2*len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		out = append(out, words[i])
		if b, _, ok := findBridge(g, strings.ToLower(words[i]), strings.ToLower(words[i+1])); ok {
			out = append(out, b)
		}
	}
	out = append(out, words[len(words)-1])
	return strings.Join(out, " ")
}

// Explain reports the bridge lookup for every adjacent pair of input words.
// It returns nil for inputs with fewer than two words.
func Explain(g *WordGraph, input string) []types.BridgeStep {
	words := strings.Fields(input)
	if len(words) < 2 {
		return nil
	}

	steps := make([]types.BridgeStep, 0, len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		step := types.BridgeStep{From: words[i], To: words[i+1]}
		if b, w, ok := findBridge(g, strings.ToLower(words[i]), strings.ToLower(words[i+1])); ok {
			step.Bridge, step.Weight = b, w
		}
		steps = append(steps, step)
	}
	return steps
}
