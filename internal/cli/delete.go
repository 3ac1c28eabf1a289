package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/record"
	"github.com/roach88/fevertrack/internal/store"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	ID          string
	Subject     string
	Date        string
	Time        string
	Temperature string
	WholeDay    bool
}

// DeleteResult is the JSON payload of a delete.
type DeleteResult struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete records by id or by subject, date, time and temperature",
		Long: `Delete records.

Either --id removes the one record with that id, or --subject, --date,
--time and --temp together remove every record with exactly those values.
Records sharing all four values cannot be told apart; all of them are removed.
With --whole-day, --subject and --date remove every record for that child on
that date.

To edit a record, delete it and add the corrected one.

Examples:
  fevertrack delete --id 0193f2c4-...
  fevertrack delete --subject hyuk --date 2025-01-13 --time 21:30 --temp 38.5
  fevertrack delete --subject hyuk --date 2025-01-13 --whole-day`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "record id")
	cmd.Flags().StringVarP(&opts.Subject, "subject", "s", "", "child id or name")
	cmd.Flags().StringVar(&opts.Date, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.Time, "time", "", "time of day")
	cmd.Flags().StringVarP(&opts.Temperature, "temp", "t", "", "temperature in °C")
	cmd.Flags().BoolVar(&opts.WholeDay, "whole-day", false, "remove all of the child's records on --date")
	cmd.MarkFlagsRequiredTogether("subject", "date")
	cmd.MarkFlagsRequiredTogether("time", "temp")
	cmd.MarkFlagsMutuallyExclusive("id", "subject")
	cmd.MarkFlagsMutuallyExclusive("id", "whole-day")
	cmd.MarkFlagsMutuallyExclusive("whole-day", "time")
	cmd.MarkFlagsOneRequired("id", "subject")

	return cmd
}

func runDelete(opts *DeleteOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, closeStore, err := opts.openStore(cmd, f)
	if err != nil {
		return err
	}
	defer closeStore()

	pred, err := opts.predicate(st.Roster())
	if err != nil {
		return reportStoreError(f, err)
	}

	records, removed, err := st.DeleteMatching(commandContext(cmd), pred)
	if err != nil {
		return reportStoreError(f, err)
	}

	result := DeleteResult{Removed: removed, Remaining: len(records)}
	if removed == 0 {
		return f.Success(result, "No records matched; nothing removed.\n")
	}
	return f.Success(result, fmt.Sprintf("Removed %d record(s).\n", removed))
}

// predicate builds the match for the given flags, canonicalizing the tuple
// the same way stored records were.
func (o *DeleteOptions) predicate(roster *record.Roster) (store.Predicate, error) {
	if o.ID != "" {
		return store.MatchID(o.ID), nil
	}

	subject := o.Subject
	if s, ok := roster.Lookup(o.Subject); ok {
		subject = s.ID
	}
	date, err := record.ParseDate(o.Date)
	if err != nil {
		return nil, &record.ValidationError{Field: "date", Value: o.Date, Message: err.Error()}
	}
	if o.WholeDay {
		return store.And(store.MatchSubject(subject), store.MatchDate(date)), nil
	}
	if o.Time == "" {
		return nil, &record.ValidationError{Field: "time", Value: o.Time, Message: "--time and --temp are required unless --whole-day is set"}
	}
	clock, err := record.ParseTime(o.Time)
	if err != nil {
		return nil, &record.ValidationError{Field: "time", Value: o.Time, Message: err.Error()}
	}
	temp, err := record.ParseTemperature(o.Temperature)
	if err != nil {
		return nil, &record.ValidationError{Field: "temperature", Value: o.Temperature, Message: err.Error()}
	}
	return store.MatchTuple(subject, date, clock, temp), nil
}
