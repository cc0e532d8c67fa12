// Package taxonomy maps the raw Penn Treebank tag codes emitted by the
// external tagger onto the simplified closed category set.
package taxonomy

import "posweights/internal/domain"

// pennToCategory collapses Penn Treebank tags onto simplified categories.
// The mapping is intentionally partial: codes with no analogue in the
// simplified set (possessive endings, particles, numbers, ...) are absent
// and their observations are dropped. It is also coarser than the Penn set
// in some respects and finer in others: Aux, Cop, To and Prefix exist in
// the category set but no Penn code maps to them, so estimation can never
// populate those categories.
var pennToCategory = map[string]domain.Category{
	// Nouns
	"NN": domain.Noun, "NNS": domain.Noun, "NNP": domain.Noun, "NNPS": domain.Noun,
	// Verbs
	"VB": domain.Verb, "VBD": domain.Verb, "VBG": domain.Verb,
	"VBN": domain.Verb, "VBP": domain.Verb, "VBZ": domain.Verb,
	// Adjectives
	"JJ": domain.Adjective, "JJR": domain.Adjective, "JJS": domain.Adjective,
	// Adverbs
	"RB": domain.Adverb, "RBR": domain.Adverb, "RBS": domain.Adverb,
	// Prepositions
	"IN": domain.Preposition,
	// Determiners
	"DT": domain.Determiner,
	// Conjunctions
	"CC": domain.Conjunction,
	// Pronouns
	"PRP": domain.Pronoun, "PRP$": domain.Pronoun,
	"WP": domain.Pronoun, "WP$": domain.Pronoun,
	// Interjections
	"UH": domain.Interjection,
	// Modal verbs
	"MD": domain.Modal,
}

// FromRawTag maps a raw tagger tag code to a simplified category.
// Unrecognized codes return ok=false and are never an error.
func FromRawTag(code string) (domain.Category, bool) {
	c, ok := pennToCategory[code]
	return c, ok
}

// categories lists every member of the closed category set.
var categories = []domain.Category{
	domain.Noun, domain.Verb, domain.Adjective, domain.Adverb,
	domain.Preposition, domain.Determiner, domain.Conjunction,
	domain.Pronoun, domain.Interjection, domain.Modal,
	domain.Auxiliary, domain.Copula, domain.InfinitiveTo,
	domain.Prefix, domain.Punctuation,
}

// All returns every category in the closed set, in declaration order.
func All() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether label is a member of the closed category set.
func Valid(label string) bool {
	for _, c := range categories {
		if string(c) == label {
			return true
		}
	}
	return false
}
