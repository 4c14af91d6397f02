// Package lineedit adapts the ergochat/readline editing engine to the
// ports.LineEngine contract, adding the history, completion and hint
// bridging the raw engine does not provide itself.
package lineedit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ergochat/readline"

	"github.com/linenoir/linenoir/internal/domain"
	"github.com/linenoir/linenoir/internal/infrastructure/history"
	"github.com/linenoir/linenoir/internal/ports"
)

// ErrUnsupportedBinding is reported when the engine cannot honor a
// requested key binding.
var ErrUnsupportedBinding = errors.New("unsupported key binding")

const (
	sgrFaint = "\x1b[2m"
	sgrReset = "\x1b[0m"
	ansiHome = "\x1b[H"
	ansiWipe = "\x1b[2J"
)

// Engine drives ergochat/readline for interactive terminals and falls
// back to plain buffered reads when stdin is not a terminal (or the
// editor cannot initialize). One Engine serves one session on one
// goroutine; the callbacks run synchronously inside Input.
type Engine struct {
	rl      *readline.Instance
	scanner *bufio.Scanner
	out     io.Writer

	hist *history.Store

	complete domain.CompletionFunc
	hint     domain.HintFunc

	wordBreaks      string
	maxHintRows     int
	hintDelay       time.Duration
	doubleTab       bool
	completeOnEmpty bool
	beep            bool
	noColor         bool

	hintInput  string
	hintText   string
	hintAt     time.Time
	pendingTab string
}

// New builds an engine. With interactive false, or when the underlying
// editor fails to initialize, the engine degrades to scanner-based
// reads so piped input keeps working.
func New(interactive bool) *Engine {
	e := &Engine{
		out:         os.Stdout,
		hist:        history.NewStore(domain.DefaultMaxHistorySize, true),
		wordBreaks:  domain.DefaultWordBreakChars,
		maxHintRows: domain.DefaultMaxHintRows,
		hintDelay:   domain.DefaultHintDelay,
	}
	if !interactive {
		e.scanner = bufio.NewScanner(os.Stdin)
		return e
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:                 "",
		HistoryLimit:           domain.DefaultMaxHistorySize,
		DisableAutoSaveHistory: true,
		AutoComplete:           &completer{engine: e},
		Painter: func(line []rune, pos int) []rune {
			return e.paint(line, pos)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: line editor unavailable (%v), using basic input\n", err)
		e.scanner = bufio.NewScanner(os.Stdin)
		return e
	}
	e.rl = rl
	return e
}

// Interactive reports whether the full editor is active.
func (e *Engine) Interactive() bool { return e.rl != nil }

// Input renders the prompt and blocks until a line is submitted or
// end-of-input occurs. End-of-input (Ctrl-D on an empty line, Ctrl-C,
// exhausted piped input) is normalized to io.EOF.
func (e *Engine) Input(prompt string) (string, error) {
	if e.rl == nil {
		fmt.Fprint(e.out, prompt)
		if !e.scanner.Scan() {
			if err := e.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return e.scanner.Text(), nil
	}

	e.rl.SetPrompt(prompt)
	line, err := e.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

// SetMaxHistorySize bounds the history store prospectively.
func (e *Engine) SetMaxHistorySize(n int) { e.hist.SetMaxSize(n) }

// SetUniqueHistory toggles dedup-on-reinsert.
func (e *Engine) SetUniqueHistory(unique bool) { e.hist.SetUnique(unique) }

// SetWordBreakCharacters configures the completion word boundaries.
func (e *Engine) SetWordBreakCharacters(charset string) {
	if charset != "" {
		e.wordBreaks = charset
	}
}

func (e *Engine) SetMaxHintRows(n int) { e.maxHintRows = n }

func (e *Engine) SetHintDelay(d time.Duration) { e.hintDelay = d }

func (e *Engine) SetDoubleTabCompletion(b bool) { e.doubleTab = b }

func (e *Engine) SetCompleteOnEmpty(b bool) { e.completeOnEmpty = b }

func (e *Engine) SetBeepOnAmbiguousCompletion(b bool) { e.beep = b }

// SetNoColor disables all styled output, including hints, which are
// only distinguishable from typed input by their styling.
func (e *Engine) SetNoColor(disabled bool) { e.noColor = disabled }

// BindKey accepts the engine's native triggers for the default actions
// and reports ErrUnsupportedBinding for anything it cannot honor, rather
// than silently misbinding.
func (e *Engine) BindKey(binding domain.KeyBinding) error {
	switch binding.Action {
	case domain.ActionClearScreen:
		if binding.Key != domain.KeyCtrlL {
			return fmt.Errorf("%w: %s only binds to Ctrl-L", ErrUnsupportedBinding, binding.Action)
		}
	case domain.ActionDeletePreviousWord:
		if binding.Key != domain.KeyCtrlW {
			return fmt.Errorf("%w: %s only binds to Ctrl-W", ErrUnsupportedBinding, binding.Action)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrUnsupportedBinding, binding.Action)
	}
	// The native triggers are built into the editor's key loop.
	return nil
}

// NotifyWindowChange is a no-op for this engine: readline tracks
// SIGWINCH itself and re-measures on redraw. The hook exists so the
// session's resize handler has a single notification path.
func (e *Engine) NotifyWindowChange(columns, rows int) {}

// HistoryLoad replaces the store contents from path and reseeds the
// editor's recall buffer.
func (e *Engine) HistoryLoad(path string) error {
	if err := e.hist.Load(path); err != nil {
		return err
	}
	if e.rl != nil {
		for _, line := range e.hist.Lines() {
			e.rl.SaveToHistory(line)
		}
	}
	return nil
}

// HistorySave persists the store to path.
func (e *Engine) HistorySave(path string) error { return e.hist.Save(path) }

// HistoryAdd records a line in the store and the recall buffer. Blank
// lines are rejected by the store's insertion policy.
func (e *Engine) HistoryAdd(line string) {
	if !e.hist.Add(line) {
		return
	}
	if e.rl != nil {
		e.rl.SaveToHistory(line)
	}
}

// HistorySync is the write-through flush: the whole store is small
// (bounded by max size), so a full rewrite per qualifying line is the
// simple durable choice.
func (e *Engine) HistorySync(path string) error { return e.hist.Save(path) }

// HistoryClear empties the store. Lines already in the recall buffer
// remain reachable with the arrow keys until the engine is closed.
func (e *Engine) HistoryClear() { e.hist.Clear() }

// HistorySize returns the number of stored entries.
func (e *Engine) HistorySize() int { return e.hist.Len() }

// SetCompletionCallback installs (or, with nil, removes) the completion
// bridge.
func (e *Engine) SetCompletionCallback(fn domain.CompletionFunc) { e.complete = fn }

// SetHintCallback installs (or, with nil, removes) the hint bridge.
func (e *Engine) SetHintCallback(fn domain.HintFunc) {
	e.hint = fn
	e.hintInput = ""
	e.hintText = ""
}

// Print writes text without corrupting an in-progress edit line.
func (e *Engine) Print(text string) {
	fmt.Fprint(e.writer(), text)
}

// ClearScreen wipes the display and repaints the prompt.
func (e *Engine) ClearScreen() {
	fmt.Fprint(e.writer(), ansiHome+ansiWipe)
	if e.rl != nil {
		e.rl.Refresh()
	}
}

// Close releases the editor and its terminal state.
func (e *Engine) Close() error {
	if e.rl != nil {
		return e.rl.Close()
	}
	return nil
}

// writer returns an output sink that coordinates with the editor's
// redraw when one is active.
func (e *Engine) writer() io.Writer {
	if e.rl != nil {
		return e.rl.Stdout()
	}
	return e.out
}

// paint appends the current hint, faintly styled, to the displayed
// line. The edit buffer itself is never modified.
func (e *Engine) paint(line []rune, pos int) []rune {
	if pos != len(line) {
		// Hints trail the line; mid-line edits leave it alone.
		return line
	}
	hint := e.currentHint(string(line))
	if hint == "" {
		return line
	}
	return append(append([]rune{}, line...), []rune(sgrFaint+hint+sgrReset)...)
}

// currentHint resolves the hint for the given input, recomputing at
// most once per hint delay. The callback runs inside the keystroke
// loop, so the delay bounds how often an expensive hint computation is
// visible to the user.
func (e *Engine) currentHint(input string) string {
	if e.hint == nil || e.noColor || e.maxHintRows <= 0 || input == "" {
		return ""
	}
	if input == e.hintInput {
		return e.hintText
	}
	if time.Since(e.hintAt) < e.hintDelay {
		return ""
	}

	ctxLen := contextLength(input, e.wordBreaks)
	hints, newCtxLen := e.hint(input, ctxLen)
	if len(hints) > e.maxHintRows {
		hints = hints[:e.maxHintRows]
	}
	ctxLen = clampContext(newCtxLen, input)

	text := ""
	if len(hints) > 0 {
		if suffixes := candidateSuffixes(hints[:1], input, ctxLen); len(suffixes) > 0 {
			text = string(suffixes[0])
		}
		if len(hints) > 1 {
			text += fmt.Sprintf(" (+%d)", len(hints)-1)
		}
	}

	e.hintInput = input
	e.hintText = text
	e.hintAt = time.Now()
	return text
}

var _ ports.LineEngine = (*Engine)(nil)
