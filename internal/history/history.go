// Package history records transformed words in a local SQLite database
// so the interactive mode can surface frequently typed words.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded word with its usage statistics.
type Entry struct {
	Word     string
	Method   string
	Style    string
	Count    int
	LastUsed time.Time
}

// Store is a word history backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS words (
	word      TEXT NOT NULL,
	method    TEXT NOT NULL,
	style     TEXT NOT NULL,
	count     INTEGER NOT NULL DEFAULT 1,
	last_used INTEGER NOT NULL,
	PRIMARY KEY (word, method, style)
);
CREATE INDEX IF NOT EXISTS idx_words_last_used ON words(last_used);
`

// Open opens (or creates) a history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record notes one use of a transformed word. Repeated uses bump the
// counter and the timestamp.
func (s *Store) Record(word, method, style string) error {
	_, err := s.db.Exec(`
		INSERT INTO words (word, method, style, count, last_used)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(word, method, style) DO UPDATE SET
			count = count + 1,
			last_used = excluded.last_used
	`, word, method, style, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("recording word: %w", err)
	}
	return nil
}

// Recent returns the most recently used words, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	return s.query(`
		SELECT word, method, style, count, last_used
		FROM words
		ORDER BY last_used DESC
		LIMIT ?
	`, limit)
}

// Top returns the most frequently used words, most used first.
func (s *Store) Top(limit int) ([]Entry, error) {
	return s.query(`
		SELECT word, method, style, count, last_used
		FROM words
		ORDER BY count DESC, last_used DESC
		LIMIT ?
	`, limit)
}

func (s *Store) query(q string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var lastUsed int64
		if err := rows.Scan(&e.Word, &e.Method, &e.Style, &e.Count, &lastUsed); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.LastUsed = time.Unix(lastUsed, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes every recorded word.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM words`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
