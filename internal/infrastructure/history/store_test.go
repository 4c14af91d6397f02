package history

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreDedupMovesToMostRecent(t *testing.T) {
	s := NewStore(10, true)
	s.Add("alpha")
	s.Add("beta")
	s.Add("alpha")

	if got := s.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	if diff := cmp.Diff([]string{"beta", "alpha"}, s.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreAllowsDuplicatesWhenDisabled(t *testing.T) {
	s := NewStore(10, false)
	s.Add("alpha")
	s.Add("alpha")

	if diff := cmp.Diff([]string{"alpha", "alpha"}, s.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreEvictsOldestOnOverflow(t *testing.T) {
	const max = 5
	s := NewStore(max, true)
	for i := 0; i < max+1; i++ {
		s.Add(fmt.Sprintf("line-%d", i))
	}

	if got := s.Len(); got != max {
		t.Fatalf("Len = %d, want %d", got, max)
	}
	lines := s.Lines()
	if lines[0] != "line-1" {
		t.Fatalf("oldest surviving entry = %q, want line-1", lines[0])
	}
	if lines[max-1] != fmt.Sprintf("line-%d", max) {
		t.Fatalf("newest entry = %q", lines[max-1])
	}
}

func TestStoreRejectsBlankLines(t *testing.T) {
	s := NewStore(10, true)
	for _, line := range []string{"", "   ", "\t", " \t \n"} {
		if s.Add(line) {
			t.Fatalf("Add(%q) accepted a blank line", line)
		}
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("Len = %d, want 0", got)
	}
}

func TestStoreSetMaxSizeIsProspective(t *testing.T) {
	s := NewStore(10, true)
	for i := 0; i < 6; i++ {
		s.Add(fmt.Sprintf("line-%d", i))
	}

	s.SetMaxSize(3)
	if got := s.Len(); got != 6 {
		t.Fatalf("Len after SetMaxSize = %d, want 6 (no retroactive trim)", got)
	}

	s.Add("line-6")
	if got := s.Len(); got != 3 {
		t.Fatalf("Len after next insertion = %d, want 3", got)
	}
	if diff := cmp.Diff([]string{"line-4", "line-5", "line-6"}, s.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	s := NewStore(10, true)
	s.Add("a")
	s.Add("b")
	s.Add("c")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := NewStore(10, true)
	fresh.Add("stale in-memory entry")
	if err := fresh.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, fresh.Lines()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreLoadMissingFileClears(t *testing.T) {
	s := NewStore(10, true)
	s.Add("leftover")
	if err := s.Load(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("Len = %d, want 0 after loading a missing file", got)
	}
}
