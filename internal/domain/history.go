package domain

import "time"

// TranscriptRecord captures a line submitted during an interactive
// session, independent of the edit-recall history kept by the engine.
type TranscriptRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Line      string    `json:"line"`
	Source    string    `json:"source"`
}
