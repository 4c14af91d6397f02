package term

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/linenoir/linenoir/internal/ports"
)

// DefaultDetector queries the real terminal.
type DefaultDetector struct{}

// IsTerminal reports whether the file descriptor is attached to an
// interactive terminal device.
func (DefaultDetector) IsTerminal(fd int) bool {
	return isatty.IsTerminal(uintptr(fd)) || isatty.IsCygwinTerminal(uintptr(fd))
}

// GetSize returns the current window geometry for the descriptor.
func (DefaultDetector) GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

var _ ports.TerminalDetector = DefaultDetector{}
