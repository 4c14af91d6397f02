package domain

import "time"

// ColorMode controls whether the session emits color escape sequences.
// ColorModeAlways still loses to a terminal without color support.
type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

// EditorConfig is the persisted session configuration.
type EditorConfig struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	History             HistorySettings    `yaml:"history"`
	Completion          CompletionSettings `yaml:"completion"`
	Hints               HintSettings       `yaml:"hints"`
	WordBreakChars      string             `yaml:"word_break_chars"`
	Color               ColorMode          `yaml:"color"`
}

// HistorySettings configures the bounded history store.
type HistorySettings struct {
	// File is the optional backing file; empty disables persistence.
	File    string `yaml:"file"`
	MaxSize int    `yaml:"max_size"`
	// AllowDuplicates disables the dedup-on-reinsert policy.
	AllowDuplicates bool `yaml:"allow_duplicates"`
}

// CompletionSettings mirrors the engine's completion behavior flags.
type CompletionSettings struct {
	DoubleTab   bool `yaml:"double_tab"`
	OnEmptyLine bool `yaml:"on_empty_line"`
	Beep        bool `yaml:"beep"`
}

// HintSettings bounds the cost of hint rendering.
type HintSettings struct {
	MaxRows int `yaml:"max_rows"`
	DelayMS int `yaml:"delay_ms"`
}

// HintDelay returns the configured hint delay as a duration.
func (c EditorConfig) HintDelay() time.Duration {
	return time.Duration(c.Hints.DelayMS) * time.Millisecond
}

// UniqueHistory reports whether the dedup-on-reinsert policy is active.
func (c EditorConfig) UniqueHistory() bool {
	return !c.History.AllowDuplicates
}
