package questions

import (
	"strings"
	"unicode"

	"github.com/cognicore/serpterms/pkg/serpterms/textnorm"
)

// DefaultCap limits the number of questions kept.
const DefaultCap = 10

// leadWords open a German question.
var leadWords = []string{
	"wie", "was", "warum", "wann", "wo", "welche", "welcher", "welches",
	"welchen", "wer", "wieso", "weshalb", "woher", "wohin", "womit", "wozu",
	"kann", "können", "ist", "sind", "gibt", "soll", "sollte", "muss",
	"darf", "lohnt",
}

// LeadWords returns a copy of the interrogative lead words.
func LeadWords() []string {
	out := make([]string, len(leadWords))
	copy(out, leadWords)
	return out
}

// Set is the question output of one analysis.
type Set struct {
	PeopleAlsoAsk   []string
	RelatedSearches []string
}

// Extract merges people-also-ask and related-search strings, drops
// duplicates and keeps the genuine questions up to cap. Related searches are
// also returned on their own, deduplicated and capped but unfiltered.
func Extract(peopleAlsoAsk, related []string, cap int) Set {
	merged := make([]string, 0, len(peopleAlsoAsk)+len(related))
	merged = append(merged, peopleAlsoAsk...)
	merged = append(merged, related...)

	var questions []string
	for _, q := range Dedupe(merged) {
		if IsQuestion(q) {
			questions = append(questions, q)
		}
	}

	return Set{
		PeopleAlsoAsk:   truncate(questions, cap),
		RelatedSearches: truncate(Dedupe(related), cap),
	}
}

// IsQuestion reports whether s contains a question mark or starts with an
// interrogative lead word, case-insensitively.
func IsQuestion(s string) bool {
	if strings.Contains(s, "?") {
		return true
	}
	first := firstWord(textnorm.Normalize(strings.TrimSpace(s)))
	if first == "" {
		return false
	}
	for _, w := range leadWords {
		if first == w {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if end < 0 {
		return s
	}
	return s[:end]
}

// Dedupe trims each string and drops blanks and case-insensitive repeats,
// keeping the first spelling seen.
func Dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := textnorm.Normalize(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func truncate(in []string, n int) []string {
	if n > 0 && len(in) > n {
		return in[:n]
	}
	return in
}
