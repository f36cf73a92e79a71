package ingest

import "github.com/cognicore/serpterms/pkg/serpterms/stoplist"

// Counts holds per-text term occurrences and remembers the order in which
// terms were first seen.
type Counts struct {
	order  []string
	counts map[string]int
}

func newCounts() Counts {
	return Counts{counts: make(map[string]int)}
}

func (c *Counts) add(term string) {
	if _, ok := c.counts[term]; !ok {
		c.order = append(c.order, term)
	}
	c.counts[term]++
}

// Terms returns the distinct terms in first-seen order.
func (c Counts) Terms() []string {
	return c.order
}

// Count returns how often term occurred.
func (c Counts) Count(term string) int {
	return c.counts[term]
}

// Len returns the number of distinct terms.
func (c Counts) Len() int {
	return len(c.order)
}

// Extractor builds unigrams and adjacent-word bigrams from text.
type Extractor struct {
	tokenizer *Tokenizer
	stops     *stoplist.Manager
}

// NewExtractor creates an extractor. A nil stoplist disables stopword gating.
func NewExtractor(tokenizer *Tokenizer, stops *stoplist.Manager) *Extractor {
	if tokenizer == nil {
		tokenizer = NewTokenizer()
	}
	return &Extractor{tokenizer: tokenizer, stops: stops}
}

// Extract tokenizes text and counts its n-grams.
func (e *Extractor) Extract(text string) Counts {
	return e.Ngrams(e.tokenizer.Tokenize(text))
}

// Ngrams counts every non-stopword unigram, then every adjacent pair whose
// halves are both non-stopwords, joined by a single space.
func (e *Extractor) Ngrams(tokens []string) Counts {
	c := newCounts()

	for _, tok := range tokens {
		if e.stops.IsStop(tok) {
			continue
		}
		c.add(tok)
	}

	for i := 0; i+1 < len(tokens); i++ {
		a, b := tokens[i], tokens[i+1]
		if e.stops.IsStop(a) || e.stops.IsStop(b) {
			continue
		}
		c.add(a + " " + b)
	}

	return c
}
