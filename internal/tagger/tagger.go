// Package tagger implements the tagging capability behind the estimation
// core: a lexicon-backed tokenizer that attaches raw Penn Treebank tag
// codes to every word it knows.
package tagger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"posweights/internal/domain"
)

// dataDirEnv overrides the model data search path when set.
const dataDirEnv = "POSWEIGHTS_DATA_DIR"

// dataDirs are the conventional model data locations, tried in order.
var dataDirs = []string{".", "data", "/app/data", "/opt/posweights-data"}

var (
	wordRe     = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
	tokenRe    = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|[.!?,;:]`)
	sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)
)

// Lexicon is a tag dictionary loaded from a <lang>_tagdict.tsv file.
// Lookup is case-insensitive; words absent from the dictionary tokenize
// with an empty tag set.
type Lexicon struct {
	lang   string
	tags   map[string][]string
	lemmas map[string]string
}

// New loads the tag dictionary for lang (e.g. "en") from the first
// conventional data location that has it. The environment variable
// POSWEIGHTS_DATA_DIR, when set, is searched first.
func New(lang string) (*Lexicon, error) {
	if lang == "" {
		lang = "en"
	}
	file := lang + "_tagdict.tsv"

	dirs := dataDirs
	if env := os.Getenv(dataDirEnv); env != "" {
		dirs = append([]string{env}, dirs...)
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err == nil {
			return NewFromDir(dir, lang)
		}
	}
	return nil, fmt.Errorf(
		"tagger model data not found: %s is not present in any of %s (set %s to its directory)",
		file, strings.Join(dirs, ", "), dataDirEnv)
}

// NewFromDir loads the tag dictionary for lang directly from dir.
func NewFromDir(dir, lang string) (*Lexicon, error) {
	if lang == "" {
		lang = "en"
	}
	path := filepath.Join(dir, lang+"_tagdict.tsv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tag dictionary %s: %w", path, err)
	}
	defer f.Close()

	l := &Lexicon{
		lang:   lang,
		tags:   make(map[string][]string),
		lemmas: make(map[string]string),
	}
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("parse tag dictionary %s: line %d: want word<TAB>tags, got %q", path, lineNo, line)
		}
		word := strings.ToLower(fields[0])
		for _, tag := range strings.Split(fields[1], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				l.tags[word] = append(l.tags[word], tag)
			}
		}
		if len(fields) > 2 {
			l.lemmas[word] = fields[2]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tag dictionary %s: %w", path, err)
	}
	return l, nil
}

// Language returns the language code the lexicon was loaded for.
func (l *Lexicon) Language() string { return l.lang }

// Len returns the number of dictionary entries.
func (l *Lexicon) Len() int { return len(l.tags) }

// Tokenize splits text into sentences and each sentence into word and
// punctuation tokens, attaching the dictionary's raw tags to every known
// word. It never fails; unknown words simply carry no tags.
func (l *Lexicon) Tokenize(text string) []domain.TaggedSentence {
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		sentences = []string{trimmed}
	}

	out := make([]domain.TaggedSentence, 0, len(sentences))
	for _, sent := range sentences {
		raw := tokenRe.FindAllString(sent, -1)
		tokens := make([]domain.Token, 0, len(raw))
		for _, surface := range raw {
			tok := domain.Token{Text: surface}
			if wordRe.MatchString(surface) {
				key := strings.ToLower(surface)
				if tags, ok := l.tags[key]; ok {
					tok.Tags = append([]string(nil), tags...)
				}
				tok.Lemma = l.lemmas[key]
			}
			tokens = append(tokens, tok)
		}
		out = append(out, domain.TaggedSentence{Tokens: tokens})
	}
	return out
}
