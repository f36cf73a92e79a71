package analytics

import "github.com/cognicore/serpterms/pkg/serpterms/ingest"

// TermStats is the corpus-wide record for one unigram or bigram.
type TermStats struct {
	Text         string
	RawFrequency int // occurrences across all titles and snippets
	TitleDocs    int // documents whose title contains the term
	SnippetDocs  int // documents whose snippet contains the term
}

// Merge adds the counts of o into s. Text is left untouched.
func (s *TermStats) Merge(o TermStats) {
	s.RawFrequency += o.RawFrequency
	s.TitleDocs += o.TitleDocs
	s.SnippetDocs += o.SnippetDocs
}

// Field marks where in a document a term was found.
type Field int

const (
	Title Field = iota
	Snippet
)

// DocumentStats turns one field's counts into per-document records: every
// distinct term contributes exactly one document to the field's count, no
// matter how often it occurred there.
func DocumentStats(c ingest.Counts, field Field) []TermStats {
	out := make([]TermStats, 0, c.Len())
	for _, term := range c.Terms() {
		ts := TermStats{Text: term, RawFrequency: c.Count(term)}
		switch field {
		case Title:
			ts.TitleDocs = 1
		case Snippet:
			ts.SnippetDocs = 1
		}
		out = append(out, ts)
	}
	return out
}

// Aggregator merges per-document term counts into one table keyed by term
// text. The table remembers insertion order so ties can be broken stably.
type Aggregator struct {
	extractor *ingest.Extractor
	totalDocs int
	order     []string
	terms     map[string]*TermStats
}

// NewAggregator creates an empty aggregator using the given extractor.
func NewAggregator(extractor *ingest.Extractor) *Aggregator {
	return &Aggregator{
		extractor: extractor,
		terms:     make(map[string]*TermStats),
	}
}

// Process consumes one document. Title terms are merged before snippet terms.
func (a *Aggregator) Process(title, snippet string) {
	a.totalDocs++
	a.merge(DocumentStats(a.extractor.Extract(title), Title))
	a.merge(DocumentStats(a.extractor.Extract(snippet), Snippet))
}

func (a *Aggregator) merge(stats []TermStats) {
	for _, ts := range stats {
		cur, ok := a.terms[ts.Text]
		if !ok {
			cur = &TermStats{Text: ts.Text}
			a.terms[ts.Text] = cur
			a.order = append(a.order, ts.Text)
		}
		cur.Merge(ts)
	}
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalDocs int
	Terms     []TermStats // insertion order
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Aggregator) Snapshot() Stats {
	terms := make([]TermStats, 0, len(a.order))
	for _, text := range a.order {
		terms = append(terms, *a.terms[text])
	}
	return Stats{TotalDocs: a.totalDocs, Terms: terms}
}

// Lookup returns the stats for a term, if present.
func (s Stats) Lookup(term string) (TermStats, bool) {
	for _, ts := range s.Terms {
		if ts.Text == term {
			return ts, true
		}
	}
	return TermStats{}, false
}
