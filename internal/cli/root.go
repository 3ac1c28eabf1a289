package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/config"
	"github.com/roach88/fevertrack/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	DataPath   string
	Backend    string
	RosterPath string
	Delimiter  string

	// Now overrides the wall clock (for testing). If nil, time.Now is used.
	Now func() time.Time

	// IDs overrides the record ID generator (for testing).
	// If nil, defaults to store.UUIDv7Generator.
	IDs store.IDGenerator

	// Logger overrides the diagnostic logger (for testing).
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fevertrack CLI.
// Flag defaults come from the environment (see config.Config).
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cfg, envErr := config.Load()
	if envErr != nil {
		cfg = config.Config{DataPath: "health_log.csv", Backend: "csv", Delimiter: ","}
	}

	cmd := &cobra.Command{
		Use:   "fevertrack",
		Short: "fevertrack - children's temperature and medication log",
		Long: `Record children's temperatures and medication, and review them.

Records are appended to a CSV file or SQLite database and classified as
normal, caution or danger against each child's danger limit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return WrapExitError(ExitCommandError, "invalid environment", envErr)
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DataPath, "data", cfg.DataPath, "path to the CSV file or SQLite database")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", cfg.Backend, "storage backend (csv|sqlite|memory)")
	cmd.PersistentFlags().StringVar(&opts.RosterPath, "roster", cfg.RosterPath, "roster file (.yaml, .yml or .cue)")
	cmd.PersistentFlags().StringVar(&opts.Delimiter, "delimiter", cfg.Delimiter, "CSV field delimiter (\"tab\" for tab)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewRosterCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
