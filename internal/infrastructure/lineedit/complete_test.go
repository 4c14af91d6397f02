package lineedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/linenoir/linenoir/internal/domain"
)

func TestContextLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "single word", input: "connect", want: 7},
		{name: "after space", input: "open proj", want: 4},
		{name: "trailing break", input: "open ", want: 0},
		{name: "path segment", input: "load dir/fil", want: 3},
		{name: "empty", input: "", want: 0},
		{name: "multibyte runes", input: "say héllo", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contextLength(tt.input, domain.DefaultWordBreakChars); got != tt.want {
				t.Fatalf("contextLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCandidateSuffixes(t *testing.T) {
	got := candidateSuffixes([]string{"connect", "config", "help"}, "show con", 3)

	want := [][]rune{[]rune("nect"), []rune("fig"), []rune("help")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("suffix translation mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleterDo(t *testing.T) {
	engine := New(false)
	engine.SetCompletionCallback(func(input string, ctxLen int) ([]string, int) {
		if ctxLen != 3 {
			t.Fatalf("engine context guess = %d, want 3", ctxLen)
		}
		return []string{"connect", "config"}, ctxLen
	})

	c := &completer{engine: engine}
	line := []rune("show con")
	candidates, length := c.Do(line, len(line))

	if length != 3 {
		t.Fatalf("context length = %d, want 3", length)
	}
	want := [][]rune{[]rune("nect"), []rune("fig")}
	if diff := cmp.Diff(want, candidates); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleterOverridesContextLength(t *testing.T) {
	engine := New(false)
	engine.SetCompletionCallback(func(input string, ctxLen int) ([]string, int) {
		// Replace the whole input, not just the trailing word.
		return []string{input + "!"}, len(input)
	})

	c := &completer{engine: engine}
	line := []rune("show con")
	candidates, length := c.Do(line, len(line))

	if length != len(line) {
		t.Fatalf("context length = %d, want %d", length, len(line))
	}
	if diff := cmp.Diff([][]rune{[]rune("!")}, candidates); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleterEmptyLineGate(t *testing.T) {
	engine := New(false)
	calls := 0
	engine.SetCompletionCallback(func(input string, ctxLen int) ([]string, int) {
		calls++
		return []string{"anything"}, ctxLen
	})

	c := &completer{engine: engine}
	if candidates, _ := c.Do(nil, 0); candidates != nil {
		t.Fatalf("expected no candidates on empty line, got %v", candidates)
	}
	if calls != 0 {
		t.Fatal("callback invoked for empty line with complete-on-empty disabled")
	}

	engine.SetCompleteOnEmpty(true)
	if candidates, _ := c.Do(nil, 0); len(candidates) != 1 {
		t.Fatalf("expected candidates on empty line once enabled, got %v", candidates)
	}
}

func TestCompleterDoubleTabHoldsAmbiguousResults(t *testing.T) {
	engine := New(false)
	engine.SetDoubleTabCompletion(true)
	engine.SetCompletionCallback(func(input string, ctxLen int) ([]string, int) {
		return []string{"connect", "config"}, ctxLen
	})

	c := &completer{engine: engine}
	line := []rune("con")

	if candidates, _ := c.Do(line, len(line)); candidates != nil {
		t.Fatalf("first trigger returned %v, want nil until second press", candidates)
	}
	candidates, _ := c.Do(line, len(line))
	if len(candidates) != 2 {
		t.Fatalf("second trigger returned %d candidates, want 2", len(candidates))
	}
}

func TestEngineHintSuffix(t *testing.T) {
	engine := New(false)
	engine.SetHintCallback(func(input string, ctxLen int) ([]string, int) {
		return []string{"connect", "config"}, ctxLen
	})

	if got := engine.currentHint("con"); got != "nect (+1)" {
		t.Fatalf("currentHint = %q, want %q", got, "nect (+1)")
	}
}

func TestEngineHintsSuppressedWithoutColor(t *testing.T) {
	engine := New(false)
	engine.SetNoColor(true)
	engine.SetHintCallback(func(input string, ctxLen int) ([]string, int) {
		return []string{"connect"}, ctxLen
	})

	if got := engine.currentHint("con"); got != "" {
		t.Fatalf("currentHint = %q, want empty in no-color mode", got)
	}
}

func TestCompleterNilCallback(t *testing.T) {
	engine := New(false)
	c := &completer{engine: engine}
	line := []rune("anything")
	if candidates, length := c.Do(line, len(line)); candidates != nil || length != 0 {
		t.Fatalf("Do without callback = (%v, %d), want (nil, 0)", candidates, length)
	}
}
