// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists submitted form entries.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotFound is returned when no entry matches a lookup.
	ErrNotFound = errors.New("history entry not found")

	// ErrClosed is returned for operations on a closed store.
	ErrClosed = errors.New("history store is closed")
)

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one persisted submission.
type Entry struct {
	// ID is a UUID assigned at append time.
	ID string

	// Field names the form field the entry was submitted from.
	Field string

	// Content is the submitted text, NFC-normalized by the caller.
	Content string

	// Via records how the submission was triggered: "basic" for plain
	// Enter, "platform" for the modifier chord, "programmatic" otherwise.
	Via string

	// CreatedAt is the submission time.
	CreatedAt time.Time
}

// =============================================================================
// STORE
// =============================================================================

// Store persists entries in a SQLite database.
type Store struct {
	db         *sql.DB
	maxEntries int
	closed     bool
}

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id         TEXT PRIMARY KEY,
	field      TEXT NOT NULL,
	content    TEXT NOT NULL,
	via        TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at DESC);
`

// Open opens (creating if needed) the history database at path.
// maxEntries bounds stored submissions; 0 means unlimited.
func Open(path string, maxEntries int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite serializes writes; one connection avoids lock contention
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, maxEntries: maxEntries}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// Append stores a new entry, assigning its ID and timestamp when unset,
// and returns the stored entry.
func (s *Store) Append(e Entry) (Entry, error) {
	if s.closed {
		return Entry{}, ErrClosed
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.Via == "" {
		e.Via = "programmatic"
	}

	_, err := s.db.Exec(
		`INSERT INTO submissions (id, field, content, via, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Field, e.Content, e.Via, e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to append entry: %w", err)
	}

	if s.maxEntries > 0 {
		s.enforceLimit()
	}

	return e, nil
}

// enforceLimit deletes the oldest entries beyond the configured cap.
// Best effort: trimming failures never fail the append that triggered them.
func (s *Store) enforceLimit() {
	s.db.Exec(`
		DELETE FROM submissions WHERE id IN (
			SELECT id FROM submissions
			ORDER BY created_at DESC, id
			LIMIT -1 OFFSET ?
		)`, s.maxEntries)
}

// Clear removes all entries.
func (s *Store) Clear() error {
	if s.closed {
		return ErrClosed
	}
	_, err := s.db.Exec(`DELETE FROM submissions`)
	return err
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (Entry, error) {
	if s.closed {
		return Entry{}, ErrClosed
	}

	row := s.db.QueryRow(
		`SELECT id, field, content, via, created_at FROM submissions WHERE id = ?`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

// Recent returns up to n entries, most recent first.
func (s *Store) Recent(n int) ([]Entry, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT id, field, content, via, created_at FROM submissions
		 ORDER BY created_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Search returns entries whose content contains the query string,
// case-insensitive, most recent first.
func (s *Store) Search(query string, limit int) ([]Entry, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, field, content, via, created_at FROM submissions
		 WHERE content LIKE '%' || ? || '%' COLLATE NOCASE
		 ORDER BY created_at DESC, id LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM submissions`).Scan(&n)
	return n, err
}

// =============================================================================
// ROW SCANNING
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var createdMs int64
	if err := row.Scan(&e.ID, &e.Field, &e.Content, &e.Via, &createdMs); err != nil {
		return Entry{}, err
	}
	e.CreatedAt = time.UnixMilli(createdMs)
	return e, nil
}

func collectEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
