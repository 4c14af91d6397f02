// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the session/policy core and
// external adapters (infrastructure): the raw line-editing engine, terminal
// descriptor queries, and transcript persistence. The session layer depends
// only on these abstractions, never on a concrete engine or database.
package ports

import (
	"time"

	"github.com/linenoir/linenoir/internal/domain"
)

// LineEngine is the raw keystroke-editing engine the session drives.
// It owns cursor movement, escape-sequence parsing and redraw; the
// session owns all policy layered on top. Input blocks until a line is
// submitted and reports end-of-input as io.EOF, which callers must
// distinguish from a successfully read empty line.
type LineEngine interface {
	Input(prompt string) (string, error)

	SetMaxHistorySize(n int)
	SetUniqueHistory(unique bool)
	SetWordBreakCharacters(charset string)
	SetMaxHintRows(n int)
	SetHintDelay(d time.Duration)
	SetDoubleTabCompletion(enabled bool)
	SetCompleteOnEmpty(enabled bool)
	SetBeepOnAmbiguousCompletion(enabled bool)
	SetNoColor(disabled bool)

	// BindKey installs a key binding, or reports an error when the
	// engine cannot honor the requested trigger.
	BindKey(binding domain.KeyBinding) error

	// NotifyWindowChange informs the engine of new terminal geometry.
	NotifyWindowChange(columns, rows int)

	HistoryLoad(path string) error
	HistorySave(path string) error
	HistoryAdd(line string)
	HistorySync(path string) error
	HistoryClear()
	HistorySize() int

	SetCompletionCallback(fn domain.CompletionFunc)
	SetHintCallback(fn domain.HintFunc)

	// Print and ClearScreen coordinate with an in-progress edit line
	// instead of corrupting it.
	Print(text string)
	ClearScreen()

	Close() error
}

// TerminalDetector answers descriptor-level terminal queries. It exists
// so the capability probe can be exercised against fixtures in tests.
type TerminalDetector interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// TranscriptRepository persists lines submitted during a session.
type TranscriptRepository interface {
	Save(rec domain.TranscriptRecord) error
	Records(limit int) ([]domain.TranscriptRecord, error)
	Count() (int, error)
	Clear() error
}

// Logger used across services.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
