// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package poet

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/graph-poet/pkg/types"
)

func TestFindBridge(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		w1, w2 string
		want   string
		wantOK bool
	}{
		{
			name:   "single two-hop path",
			corpus: "This is a test of the Mugar Omni Theater sound system.",
			w1:     "test", w2: "the",
			want: "of", wantOK: true,
		},
		{
			name:   "highest first-hop weight wins",
			corpus: "a x b a y b a y b",
			w1:     "a", w2: "b",
			want: "y", wantOK: true,
		},
		{
			name:   "second-hop weight is ignored",
			corpus: "a x b a x c a y b y b y b",
			w1:     "a", w2: "b",
			want: "x", wantOK: true,
		},
		{
			name:   "ties go to the smallest word",
			corpus: "a y b a x b",
			w1:     "a", w2: "b",
			want: "x", wantOK: true,
		},
		{
			name:   "target without outgoing edges",
			corpus: "a b c",
			w1:     "a", w2: "c",
			want: "b", wantOK: true,
		},
		{
			name:   "lookup is case-insensitive",
			corpus: "Alpha BETA gamma",
			w1:     "ALPHA", w2: "Gamma",
			want: "beta", wantOK: true,
		},
		{
			name:   "direct edge only",
			corpus: "a b",
			w1:     "a", w2: "b",
		},
		{
			name:   "source without outgoing edges",
			corpus: "a b c",
			w1:     "c", w2: "a",
		},
		{
			name:   "unknown words",
			corpus: "a b c",
			w1:     "x", w2: "y",
		},
		{
			name:   "empty graph",
			corpus: "",
			w1:     "a", w2: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build([]string{tt.corpus})
			got, ok := FindBridge(g, tt.w1, tt.w2)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestFindBridgeIsMaximal checks every word pair of a small corpus: any
// bridge returned forms a two-hop path, and no other two-hop path has a
// heavier first hop.
func TestFindBridgeIsMaximal(t *testing.T) {
	g := Build([]string{
		"the cat sat on the mat and the dog sat on the cat",
		"on the mat the dog slept and the cat sat",
	})
	words := g.Words()

	for _, w1 := range words {
		for _, w2 := range words {
			b, ok := FindBridge(g, w1, w2)
			best := 0
			for cand, weight := range g.Successors(w1) {
				if g.Weight(cand, w2) > 0 && weight > best {
					best = weight
				}
			}
			if !ok {
				assert.Zero(t, best, "%s -> ? -> %s has a path but no bridge", w1, w2)
				continue
			}
			assert.Positive(t, g.Weight(w1, b))
			assert.Positive(t, g.Weight(b, w2))
			assert.Equal(t, best, g.Weight(w1, b), "%s -> %s -> %s", w1, b, w2)
		}
	}
}

func TestPoem(t *testing.T) {
	tests := []struct {
		name   string
		corpus []string
		input  string
		want   string
	}{
		{
			name:   "inserts bridge",
			corpus: []string{"This is a test of the Mugar Omni Theater sound system."},
			input:  "Test the system.",
			want:   "Test of the system.",
		},
		{
			name:   "no bridges available",
			corpus: []string{"This is a beautiful day in the park."},
			input:  "a beautiful day",
			want:   "a beautiful day",
		},
		{
			name:   "empty input",
			corpus: []string{"a b c"},
			input:  "",
			want:   "",
		},
		{
			name:   "whitespace-only input",
			corpus: []string{"a b c"},
			input:  " \t\n ",
			want:   "",
		},
		{
			name:   "single word keeps case",
			corpus: []string{"a b c"},
			input:  "  Hello ",
			want:   "Hello",
		},
		{
			name:   "disjoint vocabulary normalizes spacing",
			corpus: []string{"a b c"},
			input:  "  Roses   are\tRED  ",
			want:   "Roses are RED",
		},
		{
			name:   "bridges are lowercase and input keeps case",
			corpus: []string{"Seek TO explore STRANGE new worlds", "to seek OUT new life"},
			input:  "SEEK explore strange WORLDS",
			want:   "SEEK to explore strange new WORLDS",
		},
		{
			name:   "bridge between every pair",
			corpus: []string{"a x b y c z d"},
			input:  "A B C D",
			want:   "A x B y C z D",
		},
		{
			name:   "empty corpus",
			corpus: nil,
			input:  "any words at all",
			want:   "any words at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.corpus)
			assert.Equal(t, tt.want, Poem(g, tt.input))
		})
	}
}

func TestPoemDoesNotMutateGraph(t *testing.T) {
	g := Build([]string{"a x b y c"})
	before := g.Edges()

	first := Poem(g, "a b c new words")
	second := Poem(g, "a b c new words")

	assert.Equal(t, first, second)
	assert.Equal(t, before, g.Edges())
}

func TestPoemConcurrent(t *testing.T) {
	g := Build([]string{strings.Repeat("the quick brown fox jumps over the lazy dog ", 50)})
	const want = "the quick brown fox jumps over the lazy dog"
	input := "the brown jumps the dog"

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Poem(g, input)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestExplain(t *testing.T) {
	g := Build([]string{"This is a test of the Mugar Omni Theater sound system."})

	steps := Explain(g, "Test the system.")
	require.Len(t, steps, 2)
	assert.Equal(t, types.BridgeStep{From: "Test", To: "the", Bridge: "of", Weight: 1}, steps[0])
	assert.Equal(t, types.BridgeStep{From: "the", To: "system."}, steps[1])

	assert.Nil(t, Explain(g, ""))
	assert.Nil(t, Explain(g, "solo"))
}
