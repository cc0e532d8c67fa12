// Package contexts synthesizes diagnostic sentences that place a target
// word in positions where a tagger is likely to read it as a noun, verb,
// adjective, adverb, preposition, determiner or conjunction.
package contexts

import "fmt"

// templates holds every diagnostic sentence frame, grouped by the category
// the frame is designed to elicit. The list is fixed: the same word always
// produces the same sentences in the same order.
var templates = []string{
	// Noun frames
	"The %s works.",
	"A %s helps.",
	"This %s is good.",
	"Many %s help.",
	"Some %s work.",
	"Each %s helps.",
	// Verb frames
	"They %s it.",
	"I %s now.",
	"We %s here.",
	"He %s well.",
	"She %s quickly.",
	"It %s fast.",
	// Adjective frames
	"The %s thing works.",
	"It is %s.",
	"A %s item helps.",
	"Very %s stuff.",
	"That seems %s.",
	"It looks %s.",
	"They are %s.",
	// Adverb frames
	"They work %s.",
	"It runs %s.",
	"Very %s done.",
	"It moves %s.",
	// Preposition frames
	"They go %s it.",
	"We work %s it.",
	"It sits %s there.",
	// Determiner frames
	"%s thing works.",
	"%s items help.",
	// Conjunction frames
	"This %s that.",
	"Here %s there.",
}

// For returns the full ordered list of diagnostic sentences for word.
func For(word string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = fmt.Sprintf(t, word)
	}
	return out
}

// Count returns how many diagnostic sentences For produces per word.
func Count() int { return len(templates) }
