package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/cognicore/serpterms/pkg/serpterms/textnorm"
)

const (
	// DefaultMinTokenLength drops tokens of two characters or fewer.
	DefaultMinTokenLength = 3

	// DefaultLetters are the non-ASCII letters kept inside tokens.
	DefaultLetters = "äöüß"
)

// Tokenizer splits SERP titles and snippets into lowercase word tokens.
// It keeps ASCII word characters, hyphens and a configured set of accented
// letters; everything else separates tokens. Stopwords are not removed here.
type Tokenizer struct {
	letters map[rune]struct{}
	minLen  int
}

// NewTokenizer creates a tokenizer with the German letter set and the default
// minimum token length.
func NewTokenizer() *Tokenizer {
	return NewTokenizerWith(DefaultLetters, DefaultMinTokenLength)
}

// NewTokenizerWith creates a tokenizer keeping the given extra letters and
// dropping tokens shorter than minLen runes. minLen below 1 is treated as 1.
func NewTokenizerWith(letters string, minLen int) *Tokenizer {
	if minLen < 1 {
		minLen = 1
	}
	set := make(map[rune]struct{}, utf8.RuneCountInString(letters))
	for _, r := range textnorm.Normalize(letters) {
		set[r] = struct{}{}
	}
	return &Tokenizer{letters: set, minLen: minLen}
}

// Tokenize lowercases text and returns its tokens in order.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if utf8.RuneCountInString(word) < t.minLen {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range textnorm.Normalize(text) {
		if t.keep(r) {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

func (t *Tokenizer) keep(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		return true
	}
	_, ok := t.letters[r]
	return ok
}
