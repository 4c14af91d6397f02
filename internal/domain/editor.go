package domain

// CompletionFunc produces completion candidates for the input typed so
// far. ctxLen is the context length: the number of trailing characters
// of the input the candidates are meant to replace. The engine passes
// its own guess (a word-break scan) and the callback returns the value
// it wants used, typically unchanged.
type CompletionFunc func(input string, ctxLen int) (candidates []string, newCtxLen int)

// HintFunc has the same shape as CompletionFunc but its results are
// rendered as muted inline hints instead of being inserted.
type HintFunc func(input string, ctxLen int) (hints []string, newCtxLen int)

// KeyAction names a rebindable editing action.
type KeyAction string

const (
	ActionClearScreen        KeyAction = "clear-screen"
	ActionDeletePreviousWord KeyAction = "delete-previous-word"
)

// Control-key triggers for the default bindings.
const (
	KeyCtrlL rune = 'L' - '@'
	KeyCtrlW rune = 'W' - '@'
)

// KeyBinding maps an editing action to the control key that triggers it.
type KeyBinding struct {
	Action KeyAction
	Key    rune
}

// DefaultKeyBindings returns the bindings every session installs unless
// a caller explicitly overrides them.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Action: ActionClearScreen, Key: KeyCtrlL},
		{Action: ActionDeletePreviousWord, Key: KeyCtrlW},
	}
}
