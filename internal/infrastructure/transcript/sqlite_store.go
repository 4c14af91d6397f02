// Package transcript persists lines submitted during interactive
// sessions, independently of the edit-recall history file.
package transcript

import (
	"database/sql"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/linenoir/linenoir/internal/domain"
	"github.com/linenoir/linenoir/internal/pkg/filesystem"
	"github.com/linenoir/linenoir/internal/ports"
)

// SQLiteStore persists transcript records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore opens (or creates) ~/.linenoir/transcript.db.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(filesystem.UserHomeDir(), ".linenoir", "transcript.db"))
}

// NewSQLiteStoreAt opens a store at an explicit path. A store whose
// database cannot be opened still satisfies the interface; operations
// report the open failure.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = filesystem.EnsureParentDir(path, domain.DirectoryPermissions)
	store := &SQLiteStore{path: path}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return store
	}
	store.db = db
	if err := store.init(); err != nil {
		_ = db.Close()
		store.db = nil
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS lines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		line TEXT NOT NULL,
		source TEXT
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(rec domain.TranscriptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return sql.ErrConnDone
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO lines (timestamp, line, source) VALUES (?, ?, ?)`,
		rec.Timestamp.Format(domain.TimestampFormat), rec.Line, rec.Source,
	)
	return err
}

// Records returns up to limit records, most recent first.
func (s *SQLiteStore) Records(limit int) ([]domain.TranscriptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, sql.ErrConnDone
	}
	if limit <= 0 {
		limit = domain.DefaultTranscriptLimit
	}

	rows, err := s.db.Query(
		`SELECT timestamp, line, source FROM lines ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.TranscriptRecord
	for rows.Next() {
		var rec domain.TranscriptRecord
		var ts string
		if err := rows.Scan(&ts, &rec.Line, &rec.Source); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = parsed
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0, sql.ErrConnDone
	}
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM lines`).Scan(&n)
	return n, err
}

// Clear removes all records.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return sql.ErrConnDone
	}
	_, err := s.db.Exec(`DELETE FROM lines`)
	return err
}

// Path returns the backing database path.
func (s *SQLiteStore) Path() string { return s.path }

var _ ports.TranscriptRepository = (*SQLiteStore)(nil)
