package rank

import (
	"sort"
	"strings"

	"github.com/cognicore/serpterms/pkg/serpterms/analytics"
	"github.com/cognicore/serpterms/pkg/serpterms/textnorm"
)

// DefaultLimit is the number of terms kept after ranking.
const DefaultLimit = 30

// Weights defines the scoring weights
type Weights struct {
	Frequency float64 // raw occurrences
	Title     float64 // documents with the term in the title
	Snippet   float64 // documents with the term in the snippet
}

// DefaultWeights weighs title coverage three times as much as snippet
// coverage.
func DefaultWeights() Weights {
	return Weights{Frequency: 1, Title: 3, Snippet: 1}
}

// Scorer ranks aggregated terms against a focus keyword.
type Scorer struct {
	weights Weights
	limit   int
}

// NewScorer creates a new scorer. A limit of zero or less keeps every term.
func NewScorer(w Weights, limit int) *Scorer {
	return &Scorer{weights: w, limit: limit}
}

// ScoredTerm is a term with its relevance score.
type ScoredTerm struct {
	analytics.TermStats
	Score float64
}

// Score calculates the relevance of a single term
//
// score = wf·frequency + wt·titleDocs + ws·snippetDocs
func (s *Scorer) Score(ts analytics.TermStats) float64 {
	return s.weights.Frequency*float64(ts.RawFrequency) +
		s.weights.Title*float64(ts.TitleDocs) +
		s.weights.Snippet*float64(ts.SnippetDocs)
}

// Rank drops terms overlapping the keyword, scores the rest and returns them
// by descending score. Equal scores keep their input order.
func (s *Scorer) Rank(terms []analytics.TermStats, keyword string) []ScoredTerm {
	kw := NormalizeKeyword(keyword)

	scored := make([]ScoredTerm, 0, len(terms))
	for _, ts := range terms {
		if Excluded(ts.Text, kw) {
			continue
		}
		scored = append(scored, ScoredTerm{TermStats: ts, Score: s.Score(ts)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if s.limit > 0 && len(scored) > s.limit {
		scored = scored[:s.limit]
	}
	return scored
}

// NormalizeKeyword lowercases a focus keyword, trims it and collapses
// internal whitespace so it lines up with space-joined bigrams.
func NormalizeKeyword(keyword string) string {
	return textnorm.Key(keyword)
}

// Excluded reports whether term overlaps the normalized keyword in either
// direction. An empty keyword excludes nothing.
func Excluded(term, keyword string) bool {
	if keyword == "" || term == "" {
		return false
	}
	return strings.Contains(keyword, term) || strings.Contains(term, keyword)
}
