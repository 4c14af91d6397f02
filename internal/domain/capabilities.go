package domain

// TerminalCapabilities is a snapshot of what the attached terminal
// supports, computed once when a probe is constructed. Columns and Rows
// are the only fields that may change afterwards (via a size refresh);
// everything else is fixed for the lifetime of the process.
type TerminalCapabilities struct {
	StdinIsTTY  bool
	StdoutIsTTY bool

	// TermType is the raw value of the TERM environment variable,
	// empty when unset.
	TermType string

	// ColorSupport is never true when StdoutIsTTY is false.
	ColorSupport   bool
	UnicodeSupport bool

	Columns int
	Rows    int
}
