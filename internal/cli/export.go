package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Subject string
	Output  string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as CSV",
		Long: `Export records as CSV in the stored column order, oldest first.

Without --output the CSV is written to stdout.

Examples:
  fevertrack export > health.csv
  fevertrack export --subject ain -o ain.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Subject, "subject", "s", "", "only this child (id or name)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, closeStore, err := opts.openStore(cmd, f)
	if err != nil {
		return err
	}
	defer closeStore()

	if opts.Output == "" {
		if err := st.ExportCSV(cmd.OutOrStdout(), opts.Subject); err != nil {
			return WrapExitError(ExitCommandError, "export failed", err)
		}
		return nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		_ = f.Error(ErrCodeWriteFailed, err.Error(), nil)
		return reportedExitError(ExitCommandError, "failed to create output file", err)
	}
	if err := st.ExportCSV(file, opts.Subject); err != nil {
		file.Close()
		_ = f.Error(ErrCodeWriteFailed, err.Error(), nil)
		return reportedExitError(ExitCommandError, "export failed", err)
	}
	if err := file.Close(); err != nil {
		_ = f.Error(ErrCodeWriteFailed, err.Error(), nil)
		return reportedExitError(ExitCommandError, "failed to close output file", err)
	}

	n := len(st.Query(opts.Subject))
	return f.Success(
		map[string]any{"path": opts.Output, "records": n},
		fmt.Sprintf("Exported %d record(s) to %s\n", n, opts.Output),
	)
}
