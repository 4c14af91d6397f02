package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// HistoryFilePermissions is the permission for history files (rw-------)
	HistoryFilePermissions = 0o600
)

// Terminal defaults used when geometry cannot be determined.
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

// Editor defaults
const (
	// DefaultMaxHistorySize is the default bound on stored history lines
	DefaultMaxHistorySize = 1000
	// DefaultWordBreakChars are the characters treated as word boundaries
	// when computing completion context
	DefaultWordBreakChars = " \t.,-%!;:=*~^'\"/?<>|[](){}"
	// DefaultMaxHintRows caps how many hint candidates are requested
	DefaultMaxHintRows = 4
	// DefaultHintDelay is how long input must be idle before hints show
	DefaultHintDelay = 200 * time.Millisecond
)

// Transcript constants
const (
	// DefaultTranscriptLimit is the default number of transcript records to display
	DefaultTranscriptLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
