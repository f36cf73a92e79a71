// Package store archives finished analyses so earlier SERP snapshots for a
// keyword can be compared. The analysis engine never uses it.
package store

import (
	"context"
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists analysis reports
type Store interface {
	Close() error

	SaveReport(ctx context.Context, r Report) error
	GetReport(ctx context.Context, id string) (Report, error)
	// ListReports returns reports for a keyword, newest first.
	ListReports(ctx context.Context, keyword string, limit int) ([]Report, error)
}

// Report is one archived analysis.
type Report struct {
	ID        string
	Keyword   string // see KeywordKey
	Country   string
	CreatedAt time.Time
	Terms     []string // ranked terms, for quick comparison
	Payload   []byte   // JSON-encoded analysis result
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewReport builds a report with a fresh ULID derived from createdAt.
func NewReport(keyword, country string, createdAt time.Time, terms []string, payload []byte) Report {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(createdAt), entropy).String()
	entropyMu.Unlock()

	return Report{
		ID:        id,
		Keyword:   KeywordKey(keyword),
		Country:   strings.ToLower(strings.TrimSpace(country)),
		CreatedAt: createdAt.UTC(),
		Terms:     terms,
		Payload:   payload,
	}
}

// KeywordKey is the lookup form of a keyword.
func KeywordKey(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
