package stoplist

import (
	"sort"

	"github.com/cognicore/serpterms/pkg/serpterms/textnorm"
)

// Manager holds the stopword set shared by unigram and bigram extraction.
// A Manager is read-only once handed to an extractor; Add and Remove are
// meant for setup.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a manager from the given words. Words are normalized
// the same way tokens are, so decomposed or uppercase input still matches.
func NewManager(words []string) *Manager {
	m := &Manager{stops: make(map[string]struct{}, len(words))}
	for _, w := range words {
		m.Add(w)
	}
	return m
}

// NewGerman returns a manager seeded with the built-in German list.
func NewGerman() *Manager {
	return NewManager(German())
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	if m == nil {
		return false
	}
	_, ok := m.stops[token]
	return ok
}

// Add adds a token to the stoplist. Blank tokens are ignored.
func (m *Manager) Add(token string) {
	if w := textnorm.Key(token); w != "" {
		m.stops[w] = struct{}{}
	}
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, textnorm.Key(token))
}

// Len returns the number of stopwords.
func (m *Manager) Len() int {
	return len(m.stops)
}

// All returns all stopwords in lexical order.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}
