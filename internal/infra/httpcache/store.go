// Package httpcache stores API responses in SQLite and revalidates them with conditional GETs.
package httpcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ghi-cli/ghi/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	url           TEXT PRIMARY KEY,
	etag          TEXT NOT NULL DEFAULT '',
	last_modified TEXT NOT NULL DEFAULT '',
	body          BLOB NOT NULL,
	stored_at     INTEGER NOT NULL
)`

// Entry is a cached response body with its validators.
// Fields are ordered to minimize memory padding.
type Entry struct {
	StoredAt     time.Time
	URL          string
	ETag         string
	LastModified string
	Body         []byte
}

// Store is a SQLite-backed response cache.
type Store struct {
	db   *sql.DB
	path string
}

// buildDSN creates a DSN for the cache database at path.
func buildDSN(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "journal_mode(WAL)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Open opens (creating if needed) the cache database in dir.
func Open(ctx context.Context, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	path := filepath.Join(dir, domain.CacheFileName)

	db, err := sql.Open("sqlite", buildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the entry for rawURL, or nil when absent.
func (s *Store) Get(ctx context.Context, rawURL string) (*Entry, error) {
	var (
		e        Entry
		storedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT url, etag, last_modified, body, stored_at FROM responses WHERE url = ?`, rawURL,
	).Scan(&e.URL, &e.ETag, &e.LastModified, &e.Body, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache entry: %w", err)
	}
	e.StoredAt = time.Unix(storedAt, 0)
	return &e, nil
}

// Put stores or replaces an entry.
func (s *Store) Put(ctx context.Context, e *Entry) error {
	storedAt := e.StoredAt
	if storedAt.IsZero() {
		storedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO responses (url, etag, last_modified, body, stored_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			etag = excluded.etag,
			last_modified = excluded.last_modified,
			body = excluded.body,
			stored_at = excluded.stored_at`,
		e.URL, e.ETag, e.LastModified, e.Body, storedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Delete removes the entry for rawURL.
func (s *Store) Delete(ctx context.Context, rawURL string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE url = ?`, rawURL); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
