package domain

// Category is one simplified part-of-speech class. The set of categories is
// closed: values are the short codes used as keys in weight table files.
type Category string

const (
	Noun         Category = "N"
	Verb         Category = "V"
	Adjective    Category = "Adj"
	Adverb       Category = "Adv"
	Preposition  Category = "Prep"
	Determiner   Category = "Det"
	Conjunction  Category = "Conj"
	Pronoun      Category = "Pron"
	Interjection Category = "Intj"
	Modal        Category = "Modal"
	Auxiliary    Category = "Aux"
	Copula       Category = "Cop"
	InfinitiveTo Category = "To"
	Prefix       Category = "Prefix"
	Punctuation  Category = "Dot"
)

// Distribution maps categories to non-negative weights. A normalized
// distribution sums to 1.0; a delta distribution may hold negative weights.
// Absent categories have weight zero, and no key maps to a near-zero value.
type Distribution map[Category]float64

// Weight returns the weight for c, or 0 if c is absent.
func (d Distribution) Weight(c Category) float64 {
	if d == nil {
		return 0
	}
	return d[c]
}

// Sum returns the total weight across all categories.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, w := range d {
		total += w
	}
	return total
}

// WordTable maps words to their category distributions. Tables are loaded
// wholesale, never mutated while processing, and written wholesale with
// words in lexicographic order.
type WordTable map[string]Distribution

// DeltaTable maps words to signed per-category weight differences between
// two word tables. It shares the WordTable file schema but not its
// non-negativity invariant.
type DeltaTable map[string]Distribution
