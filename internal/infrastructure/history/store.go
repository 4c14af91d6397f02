// Package history implements the bounded, optionally deduplicating line
// store behind arrow-key recall and history persistence.
package history

import (
	"os"
	"strings"
	"sync"

	"github.com/linenoir/linenoir/internal/domain"
)

// Store is an ordered sequence of non-empty lines, oldest first, bounded
// by maxSize. With unique enabled, re-adding an existing line moves it
// to the most-recently-used position instead of duplicating it.
type Store struct {
	mu      sync.Mutex
	lines   []string
	maxSize int
	unique  bool
}

// NewStore creates a store with the given bound and dedup policy.
func NewStore(maxSize int, unique bool) *Store {
	if maxSize <= 0 {
		maxSize = domain.DefaultMaxHistorySize
	}
	return &Store{maxSize: maxSize, unique: unique}
}

// Add inserts a line, applying the dedup and eviction policies. It
// reports whether the store changed; empty and whitespace-only lines
// are always rejected.
func (s *Store) Add(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unique {
		for i, existing := range s.lines {
			if existing == line {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
				break
			}
		}
	}

	s.lines = append(s.lines, line)
	if over := len(s.lines) - s.maxSize; over > 0 {
		s.lines = append(s.lines[:0], s.lines[over:]...)
	}
	return true
}

// SetMaxSize changes the bound prospectively. Entries already stored
// above the new bound stay until future insertions evict them.
func (s *Store) SetMaxSize(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.maxSize = n
	s.mu.Unlock()
}

// SetUnique toggles the dedup-on-reinsert policy.
func (s *Store) SetUnique(unique bool) {
	s.mu.Lock()
	s.unique = unique
	s.mu.Unlock()
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Lines returns a copy of the entries, oldest first.
func (s *Store) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Clear empties the in-memory store. The backing file, if any, is left
// untouched until the next save.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = s.lines[:0]
	s.mu.Unlock()
}

// Load replaces the store's contents with the entries persisted at
// path, one line per entry. A missing file simply leaves the store
// empty; insertion policy still applies to every loaded line.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.Clear()
			return nil
		}
		return err
	}

	s.Clear()
	for _, line := range strings.Split(string(data), "\n") {
		s.Add(strings.TrimRight(line, "\r"))
	}
	return nil
}

// Save writes the entries to path, one line per entry, oldest first.
func (s *Store) Save(path string) error {
	lines := s.Lines()
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), domain.HistoryFilePermissions)
}
