package commands

// Error messages
const (
	ErrTranscriptUnavailable = "transcript store unavailable"
	ErrInvalidLimit          = "--limit must be >= 1"
)

// Success messages
const (
	MsgNoTranscript      = "No lines recorded yet."
	MsgTranscriptCleared = "Transcript cleared."
)
