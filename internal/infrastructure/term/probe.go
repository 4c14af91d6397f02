// Package term infers a terminal's interactive capabilities from file
// descriptors and environment variables. All ambient reads happen once,
// at probe construction; the rest of the system consumes the resulting
// snapshot and never re-reads the environment ad hoc.
package term

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/linenoir/linenoir/internal/domain"
	"github.com/linenoir/linenoir/internal/ports"
)

// Environment variables consulted by the probe.
const (
	envTerm          = "TERM"
	envColorTerm     = "COLORTERM"
	envCliColor      = "CLICOLOR"
	envCliColorForce = "CLICOLOR_FORCE"
	envColumns       = "COLUMNS"
	envLines         = "LINES"
)

// localeVars are examined in priority order for the unicode decision.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// colorTermTypes is the curated list of terminal identifiers known to be
// color-capable. A TERM value matches an entry exactly or by having
// "entry-" as its prefix (so "xterm-256color" matches "xterm").
var colorTermTypes = []string{
	"xterm",
	"xterm-256color",
	"screen",
	"tmux",
	"linux",
	"rxvt",
	"rxvt-unicode",
	"alacritty",
	"kitty",
	"iterm",
	"konsole",
	"vte",
	"st",
	"foot",
	"wezterm",
	"cygwin",
	"putty",
}

// LookupEnvFunc is the environment accessor the probe reads through.
type LookupEnvFunc func(key string) (string, bool)

// Probe holds an immutable capability snapshot. Columns and Rows are
// the only fields RefreshSize may mutate after construction.
type Probe struct {
	detector  ports.TerminalDetector
	lookupEnv LookupEnvFunc

	mu   sync.Mutex // guards caps.Columns / caps.Rows
	caps domain.TerminalCapabilities
}

// Detect probes the process's real descriptors and environment.
func Detect() *Probe {
	return DetectWith(DefaultDetector{}, os.LookupEnv)
}

// DetectWith builds a probe from an explicit detector and environment
// accessor, so tests can substitute fixtures for ambient state.
func DetectWith(detector ports.TerminalDetector, lookupEnv LookupEnvFunc) *Probe {
	p := &Probe{detector: detector, lookupEnv: lookupEnv}

	caps := domain.TerminalCapabilities{
		StdinIsTTY:  detector.IsTerminal(int(os.Stdin.Fd())),
		StdoutIsTTY: detector.IsTerminal(int(os.Stdout.Fd())),
	}
	caps.TermType, _ = lookupEnv(envTerm)
	caps.ColorSupport = CheckColorSupport(caps.TermType, caps.StdoutIsTTY, lookupEnv)
	caps.UnicodeSupport = CheckUnicodeSupport(lookupEnv)
	caps.Columns, caps.Rows = p.detectSize()

	p.caps = caps
	return p
}

// Capabilities returns a copy of the current snapshot.
func (p *Probe) Capabilities() domain.TerminalCapabilities {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.caps
}

// Size returns the current columns and rows.
func (p *Probe) Size() (columns, rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.caps.Columns, p.caps.Rows
}

// RefreshSize re-runs size detection. It mutates only Columns and Rows
// and is safe to call from a resize-signal handler while a read is in
// progress.
func (p *Probe) RefreshSize() {
	columns, rows := p.detectSize()
	p.mu.Lock()
	p.caps.Columns = columns
	p.caps.Rows = rows
	p.mu.Unlock()
}

// detectSize queries the OS for window geometry and falls back to the
// COLUMNS/LINES overrides, then to the 80x24 default. Each override is
// accepted only when it parses as a positive integer.
func (p *Probe) detectSize() (columns, rows int) {
	if w, h, err := p.detector.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}

	columns, rows = domain.DefaultColumns, domain.DefaultRows
	if n, ok := positiveEnvInt(p.lookupEnv, envColumns); ok {
		columns = n
	}
	if n, ok := positiveEnvInt(p.lookupEnv, envLines); ok {
		rows = n
	}
	return columns, rows
}

func positiveEnvInt(lookupEnv LookupEnvFunc, key string) (int, bool) {
	raw, ok := lookupEnv(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// CheckColorSupport decides color capability for a terminal type.
// TERM self-identification is unreliable, so the curated list is backed
// by substring heuristics, and the explicit COLORTERM/CLICOLOR overrides
// win over heuristic misses. A non-tty stdout is never color-capable.
func CheckColorSupport(termType string, stdoutIsTTY bool, lookupEnv LookupEnvFunc) bool {
	if !stdoutIsTTY || termType == "" {
		return false
	}

	for _, known := range colorTermTypes {
		if termType == known || strings.HasPrefix(termType, known+"-") {
			return true
		}
	}

	if strings.Contains(termType, "256color") ||
		strings.Contains(termType, "color") ||
		strings.Contains(termType, "ansi") {
		return true
	}

	if _, ok := lookupEnv(envColorTerm); ok {
		return true
	}

	if _, ok := lookupEnv(envCliColorForce); ok {
		return true
	}
	if v, ok := lookupEnv(envCliColor); ok && v != "0" {
		return true
	}

	return false
}

// CheckUnicodeSupport examines the locale variables in priority order;
// the first one that is set to a value containing UTF-8 (or UTF8) wins.
// When none match, the platform default applies.
func CheckUnicodeSupport(lookupEnv LookupEnvFunc) bool {
	for _, key := range localeVars {
		v, ok := lookupEnv(key)
		if !ok || v == "" {
			continue
		}
		upper := strings.ToUpper(v)
		if strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8") {
			return true
		}
	}
	return defaultUnicodeSupport
}
