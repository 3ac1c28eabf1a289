package cli

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fevertrack/internal/testutil"
)

// newTestOptions returns options writing to a temp CSV file with a 30-minute
// stepping clock and sequential record IDs.
func newTestOptions(t *testing.T) *RootOptions {
	t.Helper()
	clock := testutil.NewStepClock(time.Date(2025, 1, 13, 8, 0, 0, 0, time.UTC), 30*time.Minute)
	return &RootOptions{
		Format:    "text",
		DataPath:  filepath.Join(t.TempDir(), "health.csv"),
		Backend:   "csv",
		Delimiter: ",",
		Now:       clock.Now,
		IDs:       testutil.NewSequentialIDs(""),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// runCommand builds a command from opts, executes it with args and returns
// its combined output.
func runCommand(t *testing.T, newCmd func(*RootOptions) *cobra.Command, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newCmd(opts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// seed appends the standard three readings used by the golden tests:
// ayul 37.8 at 08:00, hyuk 37.4 at 08:30 and hyuk 38.2 at 09:00 with
// medication.
func seed(t *testing.T, opts *RootOptions) {
	t.Helper()
	for _, args := range [][]string{
		{"--subject", "ayul", "--temp", "37.8"},
		{"--subject", "혁", "--temp", "37.4"},
		{"--subject", "hyuk", "--temp", "38.2", "--med", "antipyretic-A", "--dose", "5ml", "--note", "fever, restless"},
	} {
		_, err := runCommand(t, NewAddCommand, opts, args...)
		require.NoError(t, err)
	}
}
