package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/linenoir/linenoir/internal/app"
	"github.com/linenoir/linenoir/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "linenoir",
		Short: "linenoir - terminal line input with history, completion and hints",
		Long: "linenoir probes the terminal's capabilities and reads lines with" +
			" history recall, completion and inline hints. Without a subcommand" +
			" it starts the interactive loop.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunRepl(cmd.Context(), container, commands.ReplOptions{})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewReplCommand(container))
	root.AddCommand(commands.NewProbeCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
