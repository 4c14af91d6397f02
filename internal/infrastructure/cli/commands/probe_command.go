package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/linenoir/linenoir/internal/app"
	"github.com/linenoir/linenoir/internal/domain"
)

// NewProbeCommand creates the probe command.
func NewProbeCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Show the detected terminal capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.Probe.RefreshSize()
			renderCapabilities(cmd.OutOrStdout(), container.Probe.Capabilities())
			return nil
		},
	}
}

func renderCapabilities(out io.Writer, caps domain.TerminalCapabilities) {
	color.NoColor = !caps.ColorSupport

	fmt.Fprintln(out, "Terminal capabilities:")
	fmt.Fprintf(out, "  stdin tty:  %s\n", yesNo(caps.StdinIsTTY))
	fmt.Fprintf(out, "  stdout tty: %s\n", yesNo(caps.StdoutIsTTY))
	fmt.Fprintf(out, "  term type:  %s\n", orNone(caps.TermType))
	fmt.Fprintf(out, "  color:      %s\n", yesNo(caps.ColorSupport))
	fmt.Fprintf(out, "  unicode:    %s\n", yesNo(caps.UnicodeSupport))
	fmt.Fprintf(out, "  size:       %dx%d\n", caps.Columns, caps.Rows)
}

func yesNo(v bool) string {
	if v {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

func orNone(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
