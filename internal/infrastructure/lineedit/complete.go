package lineedit

import (
	"fmt"
	"strings"
)

// contextLength returns the length in runes of the trailing word of
// input, where the word boundary is any rune in breaks. This is the
// engine's initial guess for how many characters a completion replaces.
func contextLength(input, breaks string) int {
	runes := []rune(input)
	n := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if strings.ContainsRune(breaks, runes[i]) {
			break
		}
		n++
	}
	return n
}

// clampContext keeps a callback-supplied context length inside the
// input's rune length.
func clampContext(ctxLen int, input string) int {
	if ctxLen < 0 {
		return 0
	}
	if n := len([]rune(input)); ctxLen > n {
		return n
	}
	return ctxLen
}

// candidateSuffixes translates whole-word candidates into the suffix
// form the readline completer expects: the part of each candidate that
// extends the ctxLen runes already typed. Candidates that do not share
// the typed context are passed through whole.
func candidateSuffixes(candidates []string, input string, ctxLen int) [][]rune {
	runes := []rune(input)
	prefix := string(runes[len(runes)-ctxLen:])

	out := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		if strings.HasPrefix(cand, prefix) {
			out = append(out, []rune(cand)[ctxLen:])
			continue
		}
		out = append(out, []rune(cand))
	}
	return out
}

// completer bridges a caller-supplied completion callback into the
// readline AutoCompleter contract.
type completer struct {
	engine *Engine
}

// Do computes completion candidates for line[:pos]. The second return
// value is the context length: how many runes before pos the candidates
// replace.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	fn := c.engine.complete
	if fn == nil {
		return nil, 0
	}

	input := string(line[:pos])
	if strings.TrimSpace(input) == "" && !c.engine.completeOnEmpty {
		return nil, 0
	}

	ctxLen := contextLength(input, c.engine.wordBreaks)
	candidates, newCtxLen := fn(input, ctxLen)
	if len(candidates) == 0 {
		return nil, 0
	}
	ctxLen = clampContext(newCtxLen, input)
	suffixes := candidateSuffixes(candidates, input, ctxLen)

	if len(suffixes) > 1 {
		// Ambiguous completion: optionally demand a second trigger press
		// and optionally ring the bell.
		if c.engine.doubleTab && c.engine.pendingTab != input {
			c.engine.pendingTab = input
			return nil, 0
		}
		if c.engine.beep {
			fmt.Fprint(c.engine.writer(), "\a")
		}
	}
	c.engine.pendingTab = ""
	return suffixes, ctxLen
}
