package estimate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"posweights/internal/contexts"
	"posweights/internal/domain"
)

// lexTagger tokenizes by whitespace (punctuation stripped) and attaches the
// scripted raw tags to every occurrence of a known word.
type lexTagger struct {
	tags map[string][]string
}

func (f lexTagger) Tokenize(sentence string) []domain.TaggedSentence {
	fields := strings.Fields(sentence)
	tokens := make([]domain.Token, 0, len(fields))
	for _, w := range fields {
		w = strings.Trim(w, ".!?,")
		tokens = append(tokens, domain.Token{Text: w, Tags: f.tags[strings.ToLower(w)]})
	}
	return []domain.TaggedSentence{{Tokens: tokens}}
}

// seqTagger returns one single-token sentence per call, with the scripted
// tag set for that call; extra calls yield an untagged token.
type seqTagger struct {
	word  string
	tags  [][]string
	calls int
}

func (f *seqTagger) Tokenize(sentence string) []domain.TaggedSentence {
	var tags []string
	if f.calls < len(f.tags) {
		tags = f.tags[f.calls]
	}
	f.calls++
	return []domain.TaggedSentence{{Tokens: []domain.Token{{Text: f.word, Tags: tags}}}}
}

func TestEstimateMostlyVerb(t *testing.T) {
	// 18 verb readings and 2 noun readings out of 20 observations
	script := make([][]string, 20)
	for i := 0; i < 18; i++ {
		script[i] = []string{"VB"}
	}
	script[18] = []string{"NN"}
	script[19] = []string{"NN"}

	e := New(&seqTagger{word: "run", tags: script}, zap.NewNop())
	dist := e.Estimate("run")

	require.Len(t, dist, 2)
	assert.InDelta(t, 0.9, dist[domain.Verb], 1e-12)
	assert.InDelta(t, 0.1, dist[domain.Noun], 1e-12)
}

func TestEstimateAmbiguousTokenDilutesDenominator(t *testing.T) {
	// every occurrence carries both a verb and a noun tag
	e := New(lexTagger{tags: map[string][]string{"run": {"VB", "NN"}}}, zap.NewNop())
	dist := e.Estimate("run")

	require.Len(t, dist, 2)
	assert.InDelta(t, 0.5, dist[domain.Verb], 1e-12)
	assert.InDelta(t, 0.5, dist[domain.Noun], 1e-12)
	assert.InDelta(t, 1.0, dist.Sum(), 1e-12)
}

func TestEstimateMatchesCaseInsensitively(t *testing.T) {
	e := New(lexTagger{tags: map[string][]string{"paris": {"NNP"}}}, zap.NewNop())
	dist := e.Estimate("Paris")

	require.Len(t, dist, 1)
	assert.InDelta(t, 1.0, dist[domain.Noun], 1e-12)
}

func TestEstimateIgnoresUnmappedTags(t *testing.T) {
	e := New(lexTagger{tags: map[string][]string{"run": {"VB", "POS", "CD"}}}, zap.NewNop())
	dist := e.Estimate("run")

	// POS and CD have no taxonomy analogue and do not reach the denominator
	require.Len(t, dist, 1)
	assert.InDelta(t, 1.0, dist[domain.Verb], 1e-12)
}

func TestEstimateNoSignal(t *testing.T) {
	e := New(lexTagger{tags: map[string][]string{}}, zap.NewNop())
	dist := e.Estimate("xyzzy123")

	assert.NotNil(t, dist)
	assert.Empty(t, dist)
}

func TestEstimateVisitsEveryContext(t *testing.T) {
	f := &seqTagger{word: "blue"}
	e := New(f, zap.NewNop())
	e.Estimate("blue")
	assert.Equal(t, contexts.Count(), f.calls)
}

func TestPostprocessAlreadyNormalized(t *testing.T) {
	raw := domain.Distribution{domain.Verb: 0.9, domain.Noun: 0.1}
	got := Postprocess(raw, 0.01, 3)
	assert.Equal(t, domain.Distribution{domain.Verb: 0.9, domain.Noun: 0.1}, got)
}

func TestPostprocessThresholdAndRenormalize(t *testing.T) {
	raw := domain.Distribution{
		domain.Verb:      0.98,
		domain.Noun:      0.015,
		domain.Adjective: 0.005, // below threshold, dropped
	}
	got := Postprocess(raw, 0.01, 3)

	require.Len(t, got, 2)
	assert.NotContains(t, got, domain.Adjective)
	assert.InDelta(t, 0.985, got[domain.Verb], 1e-12)
	assert.InDelta(t, 0.015, got[domain.Noun], 1e-12)
	assert.InDelta(t, 1.0, got.Sum(), 1e-3)
}

func TestPostprocessSumsToOne(t *testing.T) {
	raw := domain.Distribution{
		domain.Noun:        1.0 / 3,
		domain.Verb:        1.0 / 3,
		domain.Adjective:   1.0 / 6,
		domain.Preposition: 1.0 / 6,
	}
	got := Postprocess(raw, 0.01, 3)
	require.Len(t, got, 4)
	assert.InDelta(t, 1.0, got.Sum(), 1e-3)
}

func TestPostprocessRoundsHalfAwayFromZero(t *testing.T) {
	// 0.125 is exact in binary, so the tie is a true half-way case:
	// away-from-zero turns it into 0.13 (half-to-even would give 0.12),
	// and renormalizing over the 1.01 total leaves 0.87/0.13.
	raw := domain.Distribution{domain.Noun: 0.875, domain.Verb: 0.125}
	got := Postprocess(raw, 0.01, 2)
	assert.InDelta(t, 0.87, got[domain.Noun], 1e-12)
	assert.InDelta(t, 0.13, got[domain.Verb], 1e-12)
}

func TestPostprocessEverythingFiltered(t *testing.T) {
	raw := domain.Distribution{domain.Noun: 0.004, domain.Verb: 0.002}
	got := Postprocess(raw, 0.01, 3)
	assert.Empty(t, got)
}

func TestPostprocessEmptyInput(t *testing.T) {
	assert.Empty(t, Postprocess(domain.Distribution{}, 0.01, 3))
}

func TestPostprocessOutputKeysSubsetOfInput(t *testing.T) {
	raw := domain.Distribution{domain.Noun: 0.7, domain.Verb: 0.3}
	got := Postprocess(raw, 0.01, 3)
	for cat := range got {
		assert.Contains(t, raw, cat)
	}
}

func TestRunKeepsEveryWord(t *testing.T) {
	e := New(lexTagger{tags: map[string][]string{"run": {"VB"}}}, zap.NewNop())
	input := domain.WordTable{
		"run":      nil,
		"xyzzy123": nil,
	}
	out, stats := e.Run(input, Options{Threshold: 0.01, Places: 3})

	require.Len(t, out, 2)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.WithoutTags)
	assert.Empty(t, out["xyzzy123"])
	assert.InDelta(t, 1.0, out["run"][domain.Verb], 1e-12)
}

func TestRunMaxWordsCapsLexicographically(t *testing.T) {
	e := New(lexTagger{tags: map[string][]string{}}, zap.NewNop())
	input := domain.WordTable{"cherry": nil, "apple": nil, "banana": nil}
	out, stats := e.Run(input, Options{Threshold: 0.01, Places: 3, MaxWords: 2})

	assert.Equal(t, 2, stats.Processed)
	assert.Contains(t, out, "apple")
	assert.Contains(t, out, "banana")
	assert.NotContains(t, out, "cherry")
}
