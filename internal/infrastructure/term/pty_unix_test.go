//go:build !windows

package term

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

func TestDefaultDetectorAgainstPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	detector := DefaultDetector{}
	if !detector.IsTerminal(int(tty.Fd())) {
		t.Fatal("pty slave not recognized as a terminal")
	}

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}
	w, h, err := detector.GetSize(int(tty.Fd()))
	if err != nil {
		t.Fatalf("GetSize: %v", err)
	}
	if w != 120 || h != 40 {
		t.Fatalf("GetSize = %dx%d, want 120x40", w, h)
	}
}

func TestDefaultDetectorRejectsDevNull(t *testing.T) {
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if (DefaultDetector{}).IsTerminal(int(f.Fd())) {
		t.Fatalf("%s recognized as a terminal", os.DevNull)
	}
}
