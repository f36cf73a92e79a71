package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/serpterms/pkg/serpterms/internalerr"
	"github.com/cognicore/serpterms/pkg/serpterms/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	closed  bool
	reports map[string]store.Report
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{reports: make(map[string]store.Report)}
}

// Close implements store.Store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// SaveReport stores a report. IDs must be unique.
func (s *Store) SaveReport(ctx context.Context, r store.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return internalerr.ErrStoreUnavailable
	}
	if r.ID == "" {
		return fmt.Errorf("%w: report id is required", internalerr.ErrInvalidInput)
	}
	if _, ok := s.reports[r.ID]; ok {
		return fmt.Errorf("%w: report %s", internalerr.ErrDuplicate, r.ID)
	}
	s.reports[r.ID] = copyReport(r)
	return nil
}

// GetReport returns a report by ID.
func (s *Store) GetReport(ctx context.Context, id string) (store.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return store.Report{}, internalerr.ErrStoreUnavailable
	}
	r, ok := s.reports[id]
	if !ok {
		return store.Report{}, fmt.Errorf("%w: report %s", internalerr.ErrNotFound, id)
	}
	return copyReport(r), nil
}

// ListReports returns reports for a keyword, newest first.
func (s *Store) ListReports(ctx context.Context, keyword string, limit int) ([]store.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, internalerr.ErrStoreUnavailable
	}

	key := store.KeywordKey(keyword)
	var out []store.Report
	for _, r := range s.reports {
		if r.Keyword == key {
			out = append(out, copyReport(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyReport(r store.Report) store.Report {
	r.Terms = append([]string(nil), r.Terms...)
	r.Payload = append([]byte(nil), r.Payload...)
	return r
}
