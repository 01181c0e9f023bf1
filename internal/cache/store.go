// Package cache implements the local model cache backing the client's
// persist hook. Hydrated models are stored as their Raw JSON documents in a
// SQLite database, keyed by resource and id.
package cache

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store errors.
var (
	ErrNotFound = errors.New("model not cached")
	ErrClosed   = errors.New("cache is closed")
)

// Store is a SQLite-backed document cache. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open creates the cache directory if needed and opens the database,
// applying the schema.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	dbPath := filepath.Join(dir, "models.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Put inserts or replaces the cached document for a model.
func (s *Store) Put(resource, id string, doc []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		"INSERT INTO models (resource, id, doc, updated_at) VALUES (?, ?, ?, ?) "+
			"ON CONFLICT(resource, id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at",
		resource, id, string(doc), now,
	)
	if err != nil {
		return fmt.Errorf("caching %s %s: %w", resource, id, err)
	}
	return nil
}

// Get returns the cached document for a model.
// Returns ErrNotFound if the model has never been cached.
func (s *Store) Get(resource, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	var doc string
	err := s.db.QueryRow(
		"SELECT doc FROM models WHERE resource = ? AND id = ?",
		resource, id,
	).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading cached %s %s: %w", resource, id, err)
	}
	return []byte(doc), nil
}

// Delete removes a cached document.
// Returns ErrNotFound if the model was not cached.
func (s *Store) Delete(resource, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	res, err := s.db.Exec("DELETE FROM models WHERE resource = ? AND id = ?", resource, id)
	if err != nil {
		return fmt.Errorf("deleting cached %s %s: %w", resource, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all cached documents for a resource, newest first.
func (s *Store) List(resource string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		"SELECT doc FROM models WHERE resource = ? ORDER BY updated_at DESC",
		resource,
	)
	if err != nil {
		return nil, fmt.Errorf("listing cached %s: %w", resource, err)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, []byte(doc))
	}
	return docs, rows.Err()
}

// Close releases the database. Idempotent; operations after Close return
// ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
