// Package diff reconciles two word→category weight tables into a signed
// delta table plus nuance statistics describing which table spreads its
// words over more categories.
package diff

import (
	"math"

	"posweights/internal/domain"
)

// tolerance below which a signed delta counts as zero.
const tolerance = 1e-10

// Options configures a table comparison.
type Options struct {
	// Places is the number of decimal digits deltas are rounded to.
	Places int
	// BothOnly restricts output to words present in both tables.
	BothOnly bool
}

// Stats describes how the two input tables relate. Nuance fields are
// accumulated only over words present in both tables; the membership
// counts always cover the full key union, even under BothOnly.
type Stats struct {
	InBoth       int
	OnlyInFirst  int
	OnlyInSecond int

	FirstMoreNuanced  int
	SecondMoreNuanced int
	SameNuance        int

	FirstTagTotal  int
	SecondTagTotal int
}

// AvgTagsFirst returns the first table's average category count per
// compared word, or 0 when no words were compared.
func (s Stats) AvgTagsFirst() float64 {
	if s.InBoth == 0 {
		return 0
	}
	return float64(s.FirstTagTotal) / float64(s.InBoth)
}

// AvgTagsSecond returns the second table's average category count per
// compared word, or 0 when no words were compared.
func (s Stats) AvgTagsSecond() float64 {
	if s.InBoth == 0 {
		return 0
	}
	return float64(s.SecondTagTotal) / float64(s.InBoth)
}

// Verdict summarizes which table has more category diversity overall.
func (s Stats) Verdict() string {
	a, b := s.AvgTagsFirst(), s.AvgTagsSecond()
	switch {
	case a > b:
		return "first table has more category diversity"
	case b > a:
		return "second table has more category diversity"
	default:
		return "both tables have similar category diversity"
	}
}

// Diff subtracts t2's weights from t1's, word by word and category by
// category, treating a missing side as all zero. Per-word results keep
// only deltas whose rounded magnitude exceeds the zero tolerance, and
// words whose deltas all vanish are omitted entirely.
func Diff(t1, t2 domain.WordTable, opts Options) (domain.DeltaTable, Stats) {
	var stats Stats
	out := make(domain.DeltaTable)

	for _, word := range unionKeys(t1, t2) {
		d1, has1 := t1[word]
		d2, has2 := t2[word]

		switch {
		case has1 && has2:
			stats.InBoth++
			stats.FirstTagTotal += len(d1)
			stats.SecondTagTotal += len(d2)
			switch {
			case len(d1) > len(d2):
				stats.FirstMoreNuanced++
			case len(d2) > len(d1):
				stats.SecondMoreNuanced++
			default:
				stats.SameNuance++
			}
		case has1:
			stats.OnlyInFirst++
		default:
			stats.OnlyInSecond++
		}

		if opts.BothOnly && (!has1 || !has2) {
			continue
		}

		deltas := diffWord(d1, d2, opts.Places)
		if len(deltas) > 0 {
			out[word] = deltas
		}
	}

	return out, stats
}

// diffWord computes the signed per-category deltas for one word over the
// union of both distributions' categories.
func diffWord(d1, d2 domain.Distribution, places int) domain.Distribution {
	deltas := make(domain.Distribution)
	for cat := range d1 {
		if d := d1.Weight(cat) - d2.Weight(cat); math.Abs(d) > tolerance {
			deltas[cat] = d
		}
	}
	for cat := range d2 {
		if _, seen := d1[cat]; seen {
			continue
		}
		if d := -d2.Weight(cat); math.Abs(d) > tolerance {
			deltas[cat] = d
		}
	}
	for cat, d := range deltas {
		r := round(d, places)
		if math.Abs(r) > tolerance {
			deltas[cat] = r
		} else {
			delete(deltas, cat)
		}
	}
	return deltas
}

func unionKeys(t1, t2 domain.WordTable) []string {
	seen := make(map[string]struct{}, len(t1)+len(t2))
	words := make([]string, 0, len(t1)+len(t2))
	for w := range t1 {
		seen[w] = struct{}{}
		words = append(words, w)
	}
	for w := range t2 {
		if _, ok := seen[w]; !ok {
			words = append(words, w)
		}
	}
	return words
}

// round rounds half away from zero, matching the estimation side.
func round(v float64, places int) float64 {
	m := math.Pow(10, float64(places))
	return math.Round(v*m) / m
}
