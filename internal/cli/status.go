package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/store"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show each child's latest reading",
		Long: `Show each child's latest reading, its change from the previous
reading, and its level. Children at or above their danger limit are flagged.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, cmd)
		},
	}
}

func runStatus(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, closeStore, err := opts.openStore(cmd, f)
	if err != nil {
		return err
	}
	defer closeStore()

	summary := st.Summary()
	return f.Success(summary, statusText(summary))
}

func statusText(summary []store.Status) string {
	var b strings.Builder
	for _, s := range summary {
		if s.Latest == nil {
			fmt.Fprintf(&b, "  %-6s %s: no records\n", s.Subject.ID, s.Subject.Name)
			continue
		}
		marker := " "
		if s.Alert {
			marker = "!"
		}
		fmt.Fprintf(&b, "%s %-6s %s: %s°C (%s) %s, %s %s, %d record(s)\n",
			marker,
			s.Subject.ID,
			s.Subject.Name,
			s.Latest.Temperature,
			s.Delta.Signed(),
			s.Severity,
			s.Latest.Date,
			s.Latest.Time,
			s.Count,
		)
	}
	return b.String()
}
