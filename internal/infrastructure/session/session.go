// Package session owns line-editing policy: it configures the raw
// engine from the capability snapshot and editor config, manages
// history persistence, bridges completion and hint callbacks, and
// exposes the blocking read-line cycle.
package session

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/linenoir/linenoir/internal/domain"
	"github.com/linenoir/linenoir/internal/infrastructure/term"
	"github.com/linenoir/linenoir/internal/pkg/filesystem"
	"github.com/linenoir/linenoir/internal/ports"
)

// ErrNoHistoryFile is returned by explicit load/save operations when no
// history file has been configured.
var ErrNoHistoryFile = errors.New("no history file configured")

// Session drives one engine on one goroutine; ReadLine is not
// reentrant. The probe is only read, except for size refreshes
// triggered by the resize handler.
type Session struct {
	engine ports.LineEngine
	probe  *term.Probe
	log    ports.Logger

	historyFile  string
	colorEnabled bool
	eof          bool

	stopResize func()
}

// New configures the engine from the capability snapshot and the editor
// config, installs the default key bindings and the window-resize
// handler, and loads the configured history file if any.
func New(engine ports.LineEngine, probe *term.Probe, log ports.Logger, cfg domain.EditorConfig) *Session {
	s := &Session{engine: engine, probe: probe, log: log}

	engine.SetMaxHistorySize(cfg.History.MaxSize)
	engine.SetUniqueHistory(cfg.UniqueHistory())
	engine.SetWordBreakCharacters(cfg.WordBreakChars)
	engine.SetMaxHintRows(cfg.Hints.MaxRows)
	engine.SetHintDelay(cfg.HintDelay())
	engine.SetDoubleTabCompletion(cfg.Completion.DoubleTab)
	engine.SetCompleteOnEmpty(cfg.Completion.OnEmptyLine)
	engine.SetBeepOnAmbiguousCompletion(cfg.Completion.Beep)

	// A terminal that cannot render color always wins over the config.
	s.colorEnabled = probe.Capabilities().ColorSupport && cfg.Color != domain.ColorModeNever
	engine.SetNoColor(!s.colorEnabled)

	for _, binding := range domain.DefaultKeyBindings() {
		if err := engine.BindKey(binding); err != nil {
			log.Warn("default key binding rejected", map[string]interface{}{
				"action": string(binding.Action),
			})
		}
	}

	s.stopResize = installResizeHandler(s.handleResize)

	if cfg.History.File != "" {
		if err := s.SetHistoryFile(cfg.History.File); err != nil {
			log.Warn("history file unavailable", map[string]interface{}{
				"path": cfg.History.File, "error": err.Error(),
			})
		}
	}
	return s
}

// ReadLine renders the prompt and blocks until a line is submitted or
// end-of-input occurs. On end-of-input the sticky EOF flag is set and
// io.EOF returned; callers must distinguish that from an empty line.
// Qualifying lines are appended to history and, when a history file is
// configured, flushed to it immediately.
func (s *Session) ReadLine(prompt string) (string, error) {
	s.eof = false

	line, err := s.engine.Input(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		s.engine.HistoryAdd(trimmed)
		if s.historyFile != "" {
			if err := s.engine.HistorySync(s.historyFile); err != nil {
				s.log.Warn("history sync failed", map[string]interface{}{
					"path": s.historyFile, "error": err.Error(),
				})
			}
		}
	}
	return line, nil
}

// EOF reports whether the most recent ReadLine ended with end-of-input.
func (s *Session) EOF() bool { return s.eof }

// ColorEnabled reports the effective color policy after capability
// gating.
func (s *Session) ColorEnabled() bool { return s.colorEnabled }

// SetHistoryFile records path as the backing history file and replaces
// the in-memory history with its persisted entries. The path stays
// recorded even when the parent directory cannot be created; later
// loads and syncs will then surface the failure.
func (s *Session) SetHistoryFile(path string) error {
	s.historyFile = path
	if err := filesystem.EnsureParentDir(path, domain.DirectoryPermissions); err != nil {
		return err
	}
	return s.engine.HistoryLoad(path)
}

// LoadHistory re-reads the configured history file, replacing in-memory
// state.
func (s *Session) LoadHistory() error {
	if s.historyFile == "" {
		return ErrNoHistoryFile
	}
	return s.engine.HistoryLoad(s.historyFile)
}

// SaveHistory writes the in-memory history to the configured file.
func (s *Session) SaveHistory() error {
	if s.historyFile == "" {
		return ErrNoHistoryFile
	}
	return s.engine.HistorySave(s.historyFile)
}

// ClearHistory empties the in-memory history. The persisted file is
// untouched until the next save.
func (s *Session) ClearHistory() { s.engine.HistoryClear() }

// HistorySize returns the current number of history entries.
func (s *Session) HistorySize() int { return s.engine.HistorySize() }

// SetMaxHistorySize changes the history bound prospectively.
func (s *Session) SetMaxHistorySize(n int) { s.engine.SetMaxHistorySize(n) }

// SetCompletion installs the completion callback; nil disables
// completion.
func (s *Session) SetCompletion(fn domain.CompletionFunc) { s.engine.SetCompletionCallback(fn) }

// SetHints installs the hint callback; nil disables hints.
func (s *Session) SetHints(fn domain.HintFunc) { s.engine.SetHintCallback(fn) }

// Print writes text safely while a prompt may be displayed.
func (s *Session) Print(text string) { s.engine.Print(text) }

// ClearScreen wipes the display without corrupting an active edit line.
func (s *Session) ClearScreen() { s.engine.ClearScreen() }

// Capabilities returns the probe's current snapshot.
func (s *Session) Capabilities() domain.TerminalCapabilities { return s.probe.Capabilities() }

// Close removes the resize handler and releases the engine.
func (s *Session) Close() error {
	if s.stopResize != nil {
		s.stopResize()
		s.stopResize = nil
	}
	return s.engine.Close()
}

// handleResize runs on window-change notifications. It only touches the
// probe's two geometry fields, so it is safe alongside an in-progress
// ReadLine.
func (s *Session) handleResize() {
	s.probe.RefreshSize()
	columns, rows := s.probe.Size()
	s.engine.NotifyWindowChange(columns, rows)
}

// historyDir is kept for callers that want the default location.
func historyDir() string {
	return filepath.Join(filesystem.UserHomeDir(), ".linenoir")
}

// DefaultHistoryFile is the conventional history path used when the
// config does not name one.
func DefaultHistoryFile() string {
	return filepath.Join(historyDir(), "history")
}
