package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linenoir/linenoir/internal/app"
	"github.com/linenoir/linenoir/internal/domain"
	"github.com/linenoir/linenoir/internal/infrastructure/session"
)

// ReplOptions configures the interactive loop.
type ReplOptions struct {
	HistoryFile  string
	NoTranscript bool
	NoHints      bool
}

// builtin is one colon-prefixed loop command.
type builtin struct {
	name string
	help string
}

var builtins = []builtin{
	{name: "help", help: "show available commands"},
	{name: "history", help: "show history entry count"},
	{name: "clear", help: "clear the screen"},
	{name: "quit", help: "leave the loop"},
	{name: "exit", help: "leave the loop"},
}

// NewReplCommand creates the repl command.
func NewReplCommand(container *app.Container) *cobra.Command {
	var opts ReplOptions

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read lines interactively with history, completion and hints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunRepl(cmd.Context(), container, opts)
		},
	}

	cmd.Flags().StringVar(&opts.HistoryFile, "history-file", "", "History file (defaults to the configured one)")
	cmd.Flags().BoolVar(&opts.NoTranscript, "no-transcript", false, "Do not record submitted lines")
	cmd.Flags().BoolVar(&opts.NoHints, "no-hints", false, "Disable inline hints")
	return cmd
}

// RunRepl drives the read-eval loop until :quit or end-of-input.
func RunRepl(ctx context.Context, container *app.Container, opts ReplOptions) error {
	sess := container.Session
	defer sess.Close()

	if opts.HistoryFile != "" {
		if err := sess.SetHistoryFile(opts.HistoryFile); err != nil {
			container.Logger.Warn("history file unavailable", map[string]interface{}{
				"path": opts.HistoryFile, "error": err.Error(),
			})
		}
	} else if container.Config.History.File == "" {
		if err := sess.SetHistoryFile(session.DefaultHistoryFile()); err != nil {
			container.Logger.Warn("default history file unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	sess.SetCompletion(completeBuiltins)
	if !opts.NoHints {
		sess.SetHints(hintBuiltins)
	}

	caps := sess.Capabilities()
	sess.Print(fmt.Sprintf("linenoir on %s (%dx%d), :help for commands\n",
		describeTerm(caps), caps.Columns, caps.Rows))

	for {
		line, err := sess.ReadLine("linenoir> ")
		if err != nil {
			if sess.EOF() {
				sess.Print("\n")
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !opts.NoTranscript {
			rec := domain.TranscriptRecord{Line: trimmed, Source: "repl"}
			if err := container.Transcript.Save(rec); err != nil {
				container.Logger.Warn("transcript save failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		switch trimmed {
		case ":quit", ":exit":
			return nil
		case ":help":
			printBuiltins(sess)
		case ":history":
			sess.Print(fmt.Sprintf("%d entries in history\n", sess.HistorySize()))
		case ":clear":
			sess.ClearScreen()
		default:
			sess.Print(line + "\n")
		}
	}
}

func describeTerm(caps domain.TerminalCapabilities) string {
	if caps.TermType == "" {
		return "unknown terminal"
	}
	return caps.TermType
}

func printBuiltins(sess *session.Session) {
	for _, b := range builtins {
		sess.Print(fmt.Sprintf("  :%-10s %s\n", b.name, b.help))
	}
}

// completeBuiltins completes colon commands. The colon is a word-break
// character, so the completion context is the bare command name.
func completeBuiltins(input string, ctxLen int) ([]string, int) {
	if !strings.HasPrefix(strings.TrimSpace(input), ":") {
		return nil, ctxLen
	}
	word := trailingContext(input, ctxLen)

	var candidates []string
	for _, b := range builtins {
		if strings.HasPrefix(b.name, word) {
			candidates = append(candidates, b.name)
		}
	}
	return candidates, ctxLen
}

// hintBuiltins surfaces the matching command names as inline hints.
func hintBuiltins(input string, ctxLen int) ([]string, int) {
	return completeBuiltins(input, ctxLen)
}

func trailingContext(input string, ctxLen int) string {
	runes := []rune(input)
	if ctxLen < 0 || ctxLen > len(runes) {
		return input
	}
	return string(runes[len(runes)-ctxLen:])
}
