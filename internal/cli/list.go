package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/record"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Subject string
	Limit   int
}

// ListItem is one record with its classification.
type ListItem struct {
	record.Record
	Severity record.Severity `json:"severity"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent records, newest first",
		Long: `Show recent records, newest first.

Examples:
  fevertrack list
  fevertrack list --subject hyuk --limit 5
  fevertrack list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Subject, "subject", "s", "", "only this child (id or name)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum records to show (0 for all)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, closeStore, err := opts.openStore(cmd, f)
	if err != nil {
		return err
	}
	defer closeStore()

	if opts.Subject != "" {
		if _, ok := st.Roster().Lookup(opts.Subject); !ok {
			f.VerboseLog("subject %q is not on the roster", opts.Subject)
		}
	}

	recent := st.Recent(opts.Subject, opts.Limit)
	items := make([]ListItem, len(recent))
	for i, r := range recent {
		items[i] = ListItem{Record: r, Severity: st.ClassifyTemperature(r.Temperature, r.Subject)}
	}

	if len(items) == 0 {
		return f.Success(items, "No records.\n")
	}

	var b strings.Builder
	fmt.Fprintln(&b, recordHeader)
	for _, item := range items {
		fmt.Fprintln(&b, recordLine(item.Record, item.Severity))
	}
	return f.Success(items, b.String())
}
