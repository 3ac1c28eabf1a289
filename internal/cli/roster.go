package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/record"
)

// NewRosterCommand creates the roster command.
func NewRosterCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "roster",
		Short:         "Show the children on the roster and their danger limits",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			roster, err := rootOpts.loadRoster(f)
			if err != nil {
				return err
			}

			subjects := roster.Subjects()
			var b strings.Builder
			for _, s := range subjects {
				fmt.Fprintf(&b, "%-6s %s  danger at %s°C\n", s.ID, s.Name, s.DangerLimit)
			}
			fmt.Fprintf(&b, "normal up to %s°C for everyone\n", record.NormalCeiling)
			fmt.Fprintf(&b, "danger at %s°C unless set per child\n", roster.DefaultLimit())
			return f.Success(subjects, b.String())
		},
	}
}
