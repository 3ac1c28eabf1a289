package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/fevertrack/internal/medium"
	"github.com/roach88/fevertrack/internal/record"
	"github.com/roach88/fevertrack/internal/testutil"
)

var testStart = time.Date(2025, 1, 13, 8, 0, 0, 0, time.UTC)

// newTestStore creates a store over m with a stepping clock, sequential IDs
// and a discarded log.
func newTestStore(t *testing.T, m medium.Medium) *Store {
	t.Helper()
	clock := testutil.NewStepClock(testStart, time.Hour)
	return Open(context.Background(), m, record.DefaultRoster(),
		WithClock(clock.Now),
		WithIDGenerator(testutil.NewSequentialIDs("")),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// mustAppend appends a reading for subject at the given temperature.
func mustAppend(t *testing.T, s *Store, subject, temp string) []record.Record {
	t.Helper()
	records, err := s.Append(context.Background(), record.Entry{Subject: subject, Temperature: temp})
	require.NoError(t, err)
	return records
}

func temps(records []record.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Temperature.String()
	}
	return out
}
