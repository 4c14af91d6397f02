package term

import (
	"errors"
	"testing"

	"github.com/linenoir/linenoir/internal/domain"
)

type fakeDetector struct {
	tty    bool
	width  int
	height int
	err    error
}

func (d fakeDetector) IsTerminal(int) bool { return d.tty }

func (d fakeDetector) GetSize(int) (int, int, error) {
	if d.err != nil {
		return 0, 0, d.err
	}
	return d.width, d.height, nil
}

func envOf(vars map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestCheckColorSupport(t *testing.T) {
	tests := []struct {
		name     string
		termType string
		tty      bool
		env      map[string]string
		want     bool
	}{
		{
			name:     "exact curated match",
			termType: "xterm",
			tty:      true,
			want:     true,
		},
		{
			name:     "curated prefix match",
			termType: "xterm-256color",
			tty:      true,
			want:     true,
		},
		{
			name:     "substring 256color on unknown terminal",
			termType: "foo-256color",
			tty:      true,
			want:     true,
		},
		{
			name:     "substring ansi",
			termType: "ansi.sys",
			tty:      true,
			want:     true,
		},
		{
			name:     "unknown terminal without signals",
			termType: "dumb",
			tty:      true,
			want:     false,
		},
		{
			name:     "empty TERM",
			termType: "",
			tty:      true,
			env:      map[string]string{"COLORTERM": "truecolor"},
			want:     false,
		},
		{
			name:     "not a tty wins over everything",
			termType: "xterm-256color",
			tty:      false,
			env:      map[string]string{"COLORTERM": "truecolor", "CLICOLOR_FORCE": "1"},
			want:     false,
		},
		{
			name:     "COLORTERM rescues unknown terminal",
			termType: "dumb",
			tty:      true,
			env:      map[string]string{"COLORTERM": "truecolor"},
			want:     true,
		},
		{
			name:     "CLICOLOR_FORCE rescues unknown terminal",
			termType: "dumb",
			tty:      true,
			env:      map[string]string{"CLICOLOR_FORCE": "1"},
			want:     true,
		},
		{
			name:     "CLICOLOR non-zero allows color",
			termType: "dumb",
			tty:      true,
			env:      map[string]string{"CLICOLOR": "1"},
			want:     true,
		},
		{
			name:     "CLICOLOR zero is not a signal",
			termType: "dumb",
			tty:      true,
			env:      map[string]string{"CLICOLOR": "0"},
			want:     false,
		},
		{
			name:     "case sensitive substring",
			termType: "FOO-256COLOR",
			tty:      true,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckColorSupport(tt.termType, tt.tty, envOf(tt.env))
			if got != tt.want {
				t.Fatalf("CheckColorSupport(%q, tty=%v) = %v, want %v", tt.termType, tt.tty, got, tt.want)
			}
		})
	}
}

func TestCheckUnicodeSupport(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{
			name: "LANG utf8",
			env:  map[string]string{"LANG": "en_US.UTF-8"},
			want: true,
		},
		{
			name: "lowercase utf8 spelling",
			env:  map[string]string{"LANG": "en_us.utf8"},
			want: true,
		},
		{
			name: "LC_ALL takes priority",
			env:  map[string]string{"LC_ALL": "ja_JP.UTF-8", "LANG": "C"},
			want: true,
		},
		{
			name: "LC_CTYPE consulted after LC_ALL",
			env:  map[string]string{"LC_CTYPE": "de_DE.UTF-8"},
			want: true,
		},
		{
			name: "plain C locale falls back to platform default",
			env:  map[string]string{"LANG": "C"},
			want: defaultUnicodeSupport,
		},
		{
			name: "no locale variables",
			env:  nil,
			want: defaultUnicodeSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckUnicodeSupport(envOf(tt.env)); got != tt.want {
				t.Fatalf("CheckUnicodeSupport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectSizeFallbacks(t *testing.T) {
	tests := []struct {
		name        string
		detector    fakeDetector
		env         map[string]string
		wantColumns int
		wantRows    int
	}{
		{
			name:        "os query wins",
			detector:    fakeDetector{width: 132, height: 50},
			env:         map[string]string{"COLUMNS": "120", "LINES": "40"},
			wantColumns: 132,
			wantRows:    50,
		},
		{
			name:        "env override on query failure",
			detector:    fakeDetector{err: errors.New("inappropriate ioctl")},
			env:         map[string]string{"COLUMNS": "120", "LINES": "40"},
			wantColumns: 120,
			wantRows:    40,
		},
		{
			name:        "zero geometry treated as failure",
			detector:    fakeDetector{width: 0, height: 0},
			env:         map[string]string{"COLUMNS": "100", "LINES": "30"},
			wantColumns: 100,
			wantRows:    30,
		},
		{
			name:        "unparseable override falls back to default",
			detector:    fakeDetector{err: errors.New("no tty")},
			env:         map[string]string{"COLUMNS": "abc", "LINES": "-4"},
			wantColumns: domain.DefaultColumns,
			wantRows:    domain.DefaultRows,
		},
		{
			name:        "defaults with nothing set",
			detector:    fakeDetector{err: errors.New("no tty")},
			wantColumns: domain.DefaultColumns,
			wantRows:    domain.DefaultRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := DetectWith(tt.detector, envOf(tt.env))
			caps := probe.Capabilities()
			if caps.Columns != tt.wantColumns || caps.Rows != tt.wantRows {
				t.Fatalf("size = %dx%d, want %dx%d", caps.Columns, caps.Rows, tt.wantColumns, tt.wantRows)
			}
		})
	}
}

func TestRefreshSizeMutatesOnlyGeometry(t *testing.T) {
	detector := &switchableDetector{fakeDetector: fakeDetector{tty: true, width: 80, height: 24}}
	env := map[string]string{"TERM": "xterm", "LANG": "en_US.UTF-8"}

	probe := DetectWith(detector, envOf(env))
	before := probe.Capabilities()
	if !before.ColorSupport || !before.UnicodeSupport {
		t.Fatalf("unexpected initial capabilities: %+v", before)
	}

	detector.fakeDetector = fakeDetector{tty: true, width: 200, height: 60}
	probe.RefreshSize()

	after := probe.Capabilities()
	if after.Columns != 200 || after.Rows != 60 {
		t.Fatalf("size after refresh = %dx%d, want 200x60", after.Columns, after.Rows)
	}

	before.Columns, before.Rows = after.Columns, after.Rows
	if before != after {
		t.Fatalf("refresh mutated non-geometry fields: before=%+v after=%+v", before, after)
	}
}

// switchableDetector lets a test change the reported geometry between
// construction and refresh.
type switchableDetector struct {
	fakeDetector
}

func (d *switchableDetector) IsTerminal(fd int) bool { return d.fakeDetector.IsTerminal(fd) }

func (d *switchableDetector) GetSize(fd int) (int, int, error) { return d.fakeDetector.GetSize(fd) }
