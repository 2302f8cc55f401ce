// Package storage implements the device-local persistent store: a flat
// key/blob table inside a SQLite database. It is the only package that
// touches durable media; everything above it works with opaque serialized
// values.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/astrogid/astrogid/internal/errs"
	"github.com/astrogid/astrogid/internal/filex"
	"github.com/astrogid/astrogid/internal/storage/migrations"

	_ "modernc.org/sqlite"
)

// Logical keys, one serialized blob per key. Absence of a key is equivalent
// to an empty collection / no session.
const (
	KeyAccounts = "accounts-collection"
	KeyPosts    = "posts-collection"
	KeyNews     = "news-collection"
	KeyArticles = "articles-collection"
	KeySession  = "session-snapshot"
	KeyFeedback = "feedback-messages"
)

// Store is a key/value store over a single SQLite file. There is exactly one
// logical writer, so the connection pool is capped at one connection; this
// also makes ":memory:" databases behave in tests.
type Store struct {
	db *sql.DB
}

// Open creates the parent directory if needed, opens (or creates) the SQLite
// database at path and runs schema migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrStorageUnavailable, err)
	}
	// WAL keeps readers from blocking the writer; the busy timeout makes
	// the driver wait instead of returning SQLITE_BUSY.
	if _, err := db.ExecContext(ctx, `
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", errs.ErrStorageUnavailable, err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", errs.ErrStorageUnavailable, err)
	}
	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the blob stored under key, or (nil, nil) when the key is
// absent. Any other failure is reported as ErrStorageUnavailable.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", errs.ErrStorageUnavailable, key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous blob.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set %s: %w", errs.ErrStorageUnavailable, key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", errs.ErrStorageUnavailable, key, err)
	}
	return nil
}
