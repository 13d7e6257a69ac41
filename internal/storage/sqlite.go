// Package storage provides durable local persistence for the resume document
// and job context as two independent keyed blobs backed by SQLite.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jonathan/resume-studio/internal/types"
)

// Blob keys. The two blobs are independent: writing one never touches the
// other.
const (
	KeyResumeData     = "resumeData"
	KeyJobDescription = "jobDescription"
)

// Store wraps a SQLite database holding keyed blobs.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database in dataDir.
// Pass ":memory:" as dataDir for an in-memory database (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "resume-studio.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	// Set busy timeout so concurrent access waits briefly instead of failing immediately.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put writes value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	return nil
}

// Get reads the value stored under key. The second return reports whether the
// key exists.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return value, true, nil
}

// LoadDocument reads the persisted resume document. A missing blob yields the
// default document. Unparseable persisted data yields the default document
// together with a *CorruptStateError so the caller can log the recovery; the
// error is informational, the returned document is always usable.
func (s *Store) LoadDocument() (types.ResumeDocument, error) {
	raw, ok, err := s.Get(KeyResumeData)
	if err != nil {
		return types.DefaultDocument(), err
	}
	if !ok {
		return types.DefaultDocument(), nil
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.DefaultDocument(), &CorruptStateError{Key: KeyResumeData, Cause: err}
	}
	return doc, nil
}

// SaveDocument serializes and writes the full document blob.
func (s *Store) SaveDocument(doc types.ResumeDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding resume document: %w", err)
	}
	return s.Put(KeyResumeData, raw)
}

// LoadJobContext reads the persisted job description; missing yields "".
func (s *Store) LoadJobContext() (string, error) {
	raw, ok, err := s.Get(KeyJobDescription)
	if err != nil || !ok {
		return "", err
	}
	return string(raw), nil
}

// SaveJobContext writes the raw job description blob.
func (s *Store) SaveJobContext(text string) error {
	return s.Put(KeyJobDescription, []byte(text))
}
