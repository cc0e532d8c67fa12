package domain

// Token is a single unit of a tokenized sentence as produced by the tagger.
type Token struct {
	// Text is the surface form exactly as it appeared in the sentence.
	Text string
	// Tags holds zero or more raw tagger-native POS codes (e.g. "NNS").
	Tags []string
	// Lemma is the base form if the tagger knows one, otherwise empty.
	Lemma string
}

// TaggedSentence is one sentence-level tokenization result.
type TaggedSentence struct {
	Tokens []Token
}

// Tagger tokenizes a sentence and attaches raw POS tag codes to each token.
// Implementations load their model data once at construction time;
// Tokenize itself never fails (unknown words simply carry no tags).
type Tagger interface {
	Tokenize(sentence string) []TaggedSentence
}
