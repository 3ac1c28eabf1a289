package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/fevertrack/internal/config"
	"github.com/roach88/fevertrack/internal/medium"
	"github.com/roach88/fevertrack/internal/record"
	"github.com/roach88/fevertrack/internal/store"
)

// formatter builds the OutputFormatter for a command.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// logger returns the diagnostic logger: Info level on stderr, Debug with
// --verbose.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// loadRoster loads the configured roster.
func (o *RootOptions) loadRoster(f *OutputFormatter) (*record.Roster, error) {
	roster, err := config.LoadRoster(o.RosterPath)
	if err != nil {
		_ = f.Error(ErrCodeConfig, err.Error(), map[string]string{"roster": o.RosterPath})
		return nil, reportedExitError(ExitCommandError, "failed to load roster", err)
	}
	return roster, nil
}

// openStore opens the configured medium and loads the store. The returned
// close function must be called when the command finishes.
func (o *RootOptions) openStore(cmd *cobra.Command, f *OutputFormatter) (*store.Store, func(), error) {
	logger := o.logger(cmd)

	roster, err := o.loadRoster(f)
	if err != nil {
		return nil, nil, err
	}

	backend, err := medium.ParseBackend(o.Backend)
	if err != nil {
		_ = f.Error(ErrCodeConfig, err.Error(), nil)
		return nil, nil, reportedExitError(ExitCommandError, "invalid backend", err)
	}
	delim, err := config.ParseDelimiter(o.Delimiter)
	if err != nil {
		_ = f.Error(ErrCodeConfig, err.Error(), nil)
		return nil, nil, reportedExitError(ExitCommandError, "invalid delimiter", err)
	}

	logger.Debug("opening medium", "backend", backend, "path", o.DataPath)
	m, closeMedium, err := medium.Open(medium.Options{
		Backend:   backend,
		Path:      o.DataPath,
		Delimiter: delim,
	})
	if err != nil {
		_ = f.Error(ErrCodeOpenFailed, err.Error(), map[string]string{"path": o.DataPath})
		return nil, nil, reportedExitError(ExitCommandError, "failed to open medium", err)
	}

	opts := []store.Option{store.WithLogger(logger)}
	if o.Now != nil {
		opts = append(opts, store.WithClock(o.Now))
	}
	if o.IDs != nil {
		opts = append(opts, store.WithIDGenerator(o.IDs))
	}

	st := store.Open(commandContext(cmd), m, roster, opts...)
	closeFn := func() {
		if err := closeMedium(); err != nil {
			logger.Error("error closing medium", "error", err)
		}
	}
	return st, closeFn, nil
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
