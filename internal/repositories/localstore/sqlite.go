package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/touristguide/internal/changes"
	"github.com/dmitrijs2005/touristguide/internal/repositories/localstore/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the Store implementation backed by a single-table SQLite
// database. Every mutation publishes a same-process storage event through
// the notifier after the write has been committed.
type SQLiteStore struct {
	db       *sql.DB
	notifier *changes.Notifier
}

// NewSQLiteStore wraps an already-opened database.
func NewSQLiteStore(db *sql.DB, notifier *changes.Notifier) *SQLiteStore {
	return &SQLiteStore{db: db, notifier: notifier}
}

// Open opens (or creates) the store database at dsn, runs migrations, and
// returns the store together with the raw handle for the caller to close.
func Open(ctx context.Context, dsn string, notifier *changes.Notifier) (*SQLiteStore, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store %s: %w", dsn, err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return NewSQLiteStore(db, notifier), db, nil
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get store[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set store[%s]: %w", key, err)
	}
	s.notify(key)
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove store[%s]: %w", key, err)
	}
	s.notify(key)
	return nil
}

// notify publishes the same-process storage signal. The native
// cross-process channel (the Watcher) only fires in other processes, so
// the store itself must signal its own process after every write.
func (s *SQLiteStore) notify(key string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(changes.Event{Topic: changes.TopicStorage, Key: key})
}
