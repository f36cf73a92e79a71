package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/serpterms/pkg/serpterms/internalerr"
	"github.com/cognicore/serpterms/pkg/serpterms/store"
)

// timeLayout sorts lexically in time order; created_at is always UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	keyword TEXT NOT NULL,
	country TEXT,
	created_at TEXT NOT NULL,
	terms TEXT NOT NULL,
	payload BLOB
);

CREATE INDEX IF NOT EXISTS reports_keyword_created ON reports(keyword, created_at);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveReport inserts a report. Saving an existing ID fails with ErrDuplicate.
func (s *sqliteStore) SaveReport(ctx context.Context, r store.Report) error {
	if r.ID == "" {
		return fmt.Errorf("%w: report id is required", internalerr.ErrInvalidInput)
	}

	termsJSON, err := json.Marshal(r.Terms)
	if err != nil {
		return err
	}

	var exists int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM reports WHERE id = ?`, r.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return fmt.Errorf("%w: report %s", internalerr.ErrDuplicate, r.ID)
	}

	const stmt = `
INSERT INTO reports (id, keyword, country, created_at, terms, payload)
VALUES (?, ?, ?, ?, ?, ?)
`
	_, err = s.db.ExecContext(ctx, stmt,
		r.ID,
		store.KeywordKey(r.Keyword),
		r.Country,
		r.CreatedAt.UTC().Format(timeLayout),
		string(termsJSON),
		r.Payload,
	)
	return err
}

// GetReport returns a report by ID.
func (s *sqliteStore) GetReport(ctx context.Context, id string) (store.Report, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, keyword, country, created_at, terms, payload
FROM reports WHERE id = ?`, id)

	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Report{}, fmt.Errorf("%w: report %s", internalerr.ErrNotFound, id)
	}
	return r, err
}

// ListReports returns reports for a keyword, newest first.
func (s *sqliteStore) ListReports(ctx context.Context, keyword string, limit int) ([]store.Report, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, keyword, country, created_at, terms, payload
FROM reports WHERE keyword = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`, store.KeywordKey(keyword), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (store.Report, error) {
	var (
		r         store.Report
		country   sql.NullString
		createdAt string
		termsJSON string
	)
	if err := sc.Scan(&r.ID, &r.Keyword, &country, &createdAt, &termsJSON, &r.Payload); err != nil {
		return store.Report{}, err
	}
	r.Country = country.String

	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return store.Report{}, fmt.Errorf("parse created_at for %s: %w", r.ID, err)
	}
	r.CreatedAt = ts

	if err := json.Unmarshal([]byte(termsJSON), &r.Terms); err != nil {
		return store.Report{}, fmt.Errorf("decode terms for %s: %w", r.ID, err)
	}
	return r, nil
}
