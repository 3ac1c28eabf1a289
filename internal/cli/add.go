package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/record"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Entry record.Entry
}

// AddResult is the JSON payload of a successful add.
type AddResult struct {
	Record   record.Record      `json:"record"`
	Severity record.Severity    `json:"severity"`
	Delta    record.Temperature `json:"delta"`
	Alert    bool               `json:"alert"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a temperature reading",
		Long: `Record a temperature reading and any medication given.

Date and time default to now. Times may be 24-hour (21:30) or 12-hour
(9:30 PM, 오후 9:30).

Examples:
  fevertrack add --subject hyuk --temp 38.4 --med antipyretic-A --dose 5ml
  fevertrack add -s 아율 -t 37.2 --date 2025-01-13 --time "7:45 AM"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	meds := make([]string, len(record.Medications))
	for i, m := range record.Medications {
		meds[i] = string(m)
	}

	cmd.Flags().StringVarP(&opts.Entry.Subject, "subject", "s", "", "child id or name (required)")
	cmd.Flags().StringVarP(&opts.Entry.Temperature, "temp", "t", "", "temperature in °C (required)")
	cmd.Flags().StringVar(&opts.Entry.Date, "date", "", "date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.Entry.Time, "time", "", "time of day (default now)")
	cmd.Flags().StringVarP(&opts.Entry.Medication, "med", "m", "", "medication: "+strings.Join(meds, "|"))
	cmd.Flags().StringVar(&opts.Entry.Dose, "dose", "", "dose amount, e.g. 5ml")
	cmd.Flags().StringVar(&opts.Entry.Note, "note", "", "free-text note")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("temp")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, closeStore, err := opts.openStore(cmd, f)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := st.Append(commandContext(cmd), opts.Entry)
	if err != nil {
		return reportStoreError(f, err)
	}

	rec := records[len(records)-1]
	_, delta := st.LatestAndDelta(rec.Subject)
	result := AddResult{
		Record:   rec,
		Severity: st.ClassifyTemperature(rec.Temperature, rec.Subject),
		Delta:    delta,
	}
	result.Alert = result.Severity == record.Danger

	var b strings.Builder
	fmt.Fprintf(&b, "Saved: %s\n", recordLine(rec, result.Severity))
	if delta != 0 {
		fmt.Fprintf(&b, "Change since previous reading: %s°C\n", delta.Signed())
	}
	if result.Alert {
		limit := st.Roster().DangerLimit(rec.Subject)
		fmt.Fprintf(&b, "ALERT: %s is at or above the %s°C danger limit\n", rec.Subject, limit)
	}
	return f.Success(result, b.String())
}
