// Package estimate derives empirical word→category weight distributions by
// running a tagger over synthesized diagnostic sentences.
package estimate

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"posweights/internal/contexts"
	"posweights/internal/domain"
	"posweights/internal/taxonomy"
)

// progressEvery controls how often Run reports batch progress.
const progressEvery = 50

// Options configures a table estimation run.
type Options struct {
	// Threshold drops categories whose observed frequency is below it.
	Threshold float64
	// Places is the number of decimal digits weights are rounded to.
	Places int
	// MaxWords caps how many words are processed; 0 means no cap.
	MaxWords int
}

// RunStats summarizes a completed estimation run.
type RunStats struct {
	Processed   int
	WithoutTags int
}

// Estimator computes observed category distributions for single words.
type Estimator struct {
	tagger domain.Tagger
	log    *zap.Logger
}

// New creates an Estimator backed by the given tagger.
func New(tagger domain.Tagger, log *zap.Logger) *Estimator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Estimator{tagger: tagger, log: log}
}

// Estimate returns the raw observed frequency distribution for word.
//
// Every token of every diagnostic sentence whose surface text matches word
// case-insensitively contributes one observation per recognized raw tag.
// A token carrying several tags therefore dilutes all of its categories
// through the shared denominator; ambiguity is treated as signal.
// A word with no recognized observations yields an empty distribution.
func (e *Estimator) Estimate(word string) domain.Distribution {
	counts := make(map[domain.Category]int)
	total := 0

	for _, sentence := range contexts.For(word) {
		for _, sent := range e.tagger.Tokenize(sentence) {
			for _, tok := range sent.Tokens {
				if !strings.EqualFold(tok.Text, word) {
					continue
				}
				for _, tag := range tok.Tags {
					if cat, ok := taxonomy.FromRawTag(tag); ok {
						counts[cat]++
						total++
					}
				}
			}
		}
	}

	if total == 0 {
		return domain.Distribution{}
	}
	dist := make(domain.Distribution, len(counts))
	for cat, n := range counts {
		dist[cat] = float64(n) / float64(total)
	}
	return dist
}

// Run estimates and post-processes a distribution for every word of input.
// Words are visited in lexicographic order so that a MaxWords cap selects a
// reproducible subset. Every input word appears in the output, with an
// empty distribution when no tag signal was found.
func (e *Estimator) Run(input domain.WordTable, opts Options) (domain.WordTable, RunStats) {
	words := make([]string, 0, len(input))
	for w := range input {
		words = append(words, w)
	}
	sort.Strings(words)
	if opts.MaxWords > 0 && len(words) > opts.MaxWords {
		words = words[:opts.MaxWords]
	}

	e.log.Info("processing words", zap.Int("count", len(words)))

	out := make(domain.WordTable, len(words))
	var stats RunStats
	for _, word := range words {
		if stats.Processed > 0 && stats.Processed%progressEvery == 0 {
			e.log.Info("progress", zap.Int("processed", stats.Processed))
		}
		dist := Postprocess(e.Estimate(word), opts.Threshold, opts.Places)
		if len(dist) == 0 {
			stats.WithoutTags++
		}
		out[word] = dist
		stats.Processed++
	}

	e.log.Info("processing complete",
		zap.Int("processed", stats.Processed),
		zap.Int("without_tags", stats.WithoutTags))
	return out, stats
}

// Postprocess filters raw below threshold, rounds to places decimal digits
// and renormalizes the remainder to sum to 1.0 (rounding again after the
// rescale). If everything is filtered away the result is empty: the word
// stays in the table with zero categories.
func Postprocess(raw domain.Distribution, threshold float64, places int) domain.Distribution {
	filtered := make(domain.Distribution, len(raw))
	for cat, w := range raw {
		if w >= threshold {
			filtered[cat] = round(w, places)
		}
	}

	total := filtered.Sum()
	if total <= 0 {
		return domain.Distribution{}
	}
	out := make(domain.Distribution, len(filtered))
	for cat, w := range filtered {
		out[cat] = round(w/total, places)
	}
	return out
}

// round rounds half away from zero, the portable rule for weight files.
func round(v float64, places int) float64 {
	m := math.Pow(10, float64(places))
	return math.Round(v*m) / m
}
