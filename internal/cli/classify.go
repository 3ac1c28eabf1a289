package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/record"
)

// ClassifyOptions holds flags for the classify command.
type ClassifyOptions struct {
	*RootOptions
	Subject string
}

// ClassifyResult is the JSON payload of classify.
type ClassifyResult struct {
	Subject     string             `json:"subject"`
	Temperature record.Temperature `json:"temperature"`
	Severity    record.Severity    `json:"severity"`
	DangerLimit record.Temperature `json:"danger_limit"`
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClassifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "classify <temperature>",
		Short: "Classify a temperature for a child without recording it",
		Long: `Classify a temperature as normal, caution or danger for a child.

Up to 37.5°C is normal. From above 37.5°C up to (not including) the child's
danger limit is caution. At or above the danger limit is danger.

Example:
  fevertrack classify --subject hyuk 38.0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Subject, "subject", "s", "", "child id or name (required)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func runClassify(opts *ClassifyOptions, value string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	roster, err := opts.loadRoster(f)
	if err != nil {
		return err
	}

	subject, ok := roster.Lookup(opts.Subject)
	if !ok {
		return reportStoreError(f, &record.ValidationError{Field: "subject", Value: opts.Subject, Message: "not on roster"})
	}
	temp, err := record.ParseTemperature(value)
	if err != nil {
		return reportStoreError(f, &record.ValidationError{Field: "temperature", Value: value, Message: err.Error()})
	}

	result := ClassifyResult{
		Subject:     subject.ID,
		Temperature: temp,
		Severity:    roster.Classify(temp, subject.ID),
		DangerLimit: subject.DangerLimit,
	}
	return f.Success(result, fmt.Sprintf("%s°C for %s: %s (danger limit %s°C)\n",
		temp, subject.ID, result.Severity, subject.DangerLimit))
}
