package contexts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForIsDeterministic(t *testing.T) {
	a := For("run")
	b := For("run")
	assert.Equal(t, a, b, "same word must produce the same sentences in the same order")
}

func TestForSubstitutesEverySentence(t *testing.T) {
	sentences := For("xylophone")
	require.Len(t, sentences, Count())
	for _, s := range sentences {
		assert.Contains(t, s, "xylophone")
		assert.NotContains(t, s, "%s")
	}
}

func TestForCoversDetectableCategories(t *testing.T) {
	sentences := For("run")
	require.Len(t, sentences, 30)

	// one representative frame per elicited category, in template order:
	// noun, verb, adjective, adverb, preposition, determiner, conjunction
	assert.Equal(t, "The run works.", sentences[0])
	assert.Equal(t, "They run it.", sentences[6])
	assert.Equal(t, "It is run.", sentences[13])
	assert.Equal(t, "They work run.", sentences[19])
	assert.Equal(t, "They go run it.", sentences[23])
	assert.Equal(t, "run thing works.", sentences[26])
	assert.Equal(t, "This run that.", sentences[28])
}

func TestForFrameCounts(t *testing.T) {
	// 6 noun + 6 verb + 7 adjective + 4 adverb + 3 preposition
	// + 2 determiner + 2 conjunction frames
	assert.Equal(t, 30, Count())
}

func TestForPlacesNounAfterDeterminer(t *testing.T) {
	for _, s := range For("cat")[:3] {
		first := strings.Fields(s)[0]
		assert.Contains(t, []string{"The", "A", "This"}, first)
	}
}
