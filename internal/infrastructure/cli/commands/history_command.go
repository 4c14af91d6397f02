package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/linenoir/linenoir/internal/app"
	"github.com/linenoir/linenoir/internal/domain"
)

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded session lines",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryStatsCommand(container),
	)
	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent lines, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf(ErrInvalidLimit)
			}
			return listTranscript(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultTranscriptLimit, "Max entries to show")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Transcript == nil {
				return fmt.Errorf(ErrTranscriptUnavailable)
			}
			if err := container.Transcript.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgTranscriptCleared)
			return nil
		},
	}
}

func newHistoryStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many lines are recorded",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Transcript == nil {
				return fmt.Errorf(ErrTranscriptUnavailable)
			}
			n, err := container.Transcript.Count()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d line(s) recorded\n", n)
			return nil
		},
	}
}

func listTranscript(out io.Writer, container *app.Container, limit int) error {
	if container.Transcript == nil {
		return fmt.Errorf(ErrTranscriptUnavailable)
	}
	records, err := container.Transcript.Records(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoTranscript)
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s  %s\n", rec.Timestamp.Format(domain.TimestampFormat), rec.Line)
	}
	return nil
}
