package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/roach88/fevertrack/internal/medium"
	"github.com/roach88/fevertrack/internal/record"
)

// Store owns the health record collection.
type Store struct {
	medium medium.Medium
	roster *record.Roster
	now    func() time.Time
	ids    IDGenerator
	logger *slog.Logger

	records []record.Record

	// unreadable is set when the medium exists but the last Load could not
	// read or decode it. Mutations are refused so the stored history is not
	// replaced by the empty in-memory collection.
	unreadable error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for default dates and times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the record ID generator (for testing).
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates an empty store over m. Call Load to read existing records.
func New(m medium.Medium, roster *record.Roster, opts ...Option) *Store {
	s := &Store{
		medium: m,
		roster: roster,
		now:    time.Now,
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.roster == nil {
		s.roster = record.DefaultRoster()
	}
	return s
}

// Open creates a store over m and loads its records.
func Open(ctx context.Context, m medium.Medium, roster *record.Roster, opts ...Option) *Store {
	s := New(m, roster, opts...)
	s.Load(ctx)
	return s
}

// Roster returns the roster records are validated against.
func (s *Store) Roster() *record.Roster {
	return s.roster
}

// Load reads the medium in full and replaces the in-memory collection.
//
// Load never fails: a missing, unreadable or corrupt medium yields an empty
// collection, and the cause is logged. A medium that exists but cannot be
// read or decoded also blocks Append and DeleteMatching until a later Load
// succeeds; a missing medium stays writable.
func (s *Store) Load(ctx context.Context) []record.Record {
	s.records = nil
	s.unreadable = nil

	rows, err := s.medium.ReadAll(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("medium not found, starting empty", "error", err)
			return s.snapshot()
		}
		s.logger.Warn("medium unreadable, starting empty", "error", err)
		s.unreadable = err
		return s.snapshot()
	}

	records, err := decodeRows(rows)
	if err != nil {
		s.logger.Warn("medium corrupt, starting empty", "error", err)
		s.unreadable = err
		return s.snapshot()
	}

	s.records = records
	s.logger.Debug("records loaded", "count", len(records))
	return s.snapshot()
}

// Append validates entry, appends the resulting record and persists the
// collection. On a *record.ValidationError or *PersistenceError the
// collection is unchanged.
func (s *Store) Append(ctx context.Context, entry record.Entry) ([]record.Record, error) {
	rec, err := s.roster.Parse(entry, s.now())
	if err != nil {
		return nil, err
	}
	if s.unreadable != nil {
		return nil, &PersistenceError{Op: "append", Err: fmt.Errorf("%w: %v", ErrMediumUnreadable, s.unreadable)}
	}
	rec.ID = s.ids.Generate()

	next := make([]record.Record, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, rec)

	if err := s.persist(ctx, next); err != nil {
		return nil, &PersistenceError{Op: "append", Err: err}
	}

	s.records = next
	s.logger.Debug("record appended",
		"id", rec.ID,
		"subject", rec.Subject,
		"temperature", rec.Temperature.String(),
	)
	return s.snapshot(), nil
}

// Query returns the records for subject in insertion order, or every record
// when subject is empty. Subject may be an identifier or a roster display
// name.
func (s *Store) Query(subject string) []record.Record {
	if subject == "" {
		return s.snapshot()
	}
	id := s.resolve(subject)

	out := []record.Record{}
	for _, r := range s.records {
		if r.Subject == id {
			out = append(out, r)
		}
	}
	return out
}

// DeleteMatching removes every record for which pred holds and persists the
// result. It returns the updated collection and the number removed. Zero
// matches is not an error and writes nothing.
func (s *Store) DeleteMatching(ctx context.Context, pred Predicate) ([]record.Record, int, error) {
	if s.unreadable != nil {
		return nil, 0, &PersistenceError{Op: "delete", Err: fmt.Errorf("%w: %v", ErrMediumUnreadable, s.unreadable)}
	}
	next := make([]record.Record, 0, len(s.records))
	for _, r := range s.records {
		if !pred(r) {
			next = append(next, r)
		}
	}

	removed := len(s.records) - len(next)
	if removed == 0 {
		return s.snapshot(), 0, nil
	}

	if err := s.persist(ctx, next); err != nil {
		return nil, 0, &PersistenceError{Op: "delete", Err: err}
	}

	s.records = next
	s.logger.Debug("records deleted", "removed", removed, "remaining", len(next))
	return s.snapshot(), removed, nil
}

// ClassifyTemperature classifies value against the subject's danger limit.
func (s *Store) ClassifyTemperature(value record.Temperature, subject string) record.Severity {
	return s.roster.Classify(value, s.resolve(subject))
}

// LatestAndDelta returns the last appended record for subject and its
// temperature minus the temperature of the record before it. Delta is zero
// with fewer than two records; latest is nil with none.
func (s *Store) LatestAndDelta(subject string) (*record.Record, record.Temperature) {
	id := s.resolve(subject)

	var latest, previous *record.Record
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Subject != id {
			continue
		}
		r := s.records[i]
		if latest == nil {
			latest = &r
			continue
		}
		previous = &r
		break
	}

	if latest == nil || previous == nil {
		return latest, 0
	}
	return latest, latest.Temperature - previous.Temperature
}

// resolve maps a display name to its identifier. Unknown keys pass through.
func (s *Store) resolve(subject string) string {
	if sub, ok := s.roster.Lookup(subject); ok {
		return sub.ID
	}
	return subject
}

func (s *Store) snapshot() []record.Record {
	out := make([]record.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) persist(ctx context.Context, records []record.Record) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, append([]string(nil), record.Columns...))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return s.medium.WriteAll(ctx, rows)
}

func decodeRows(rows [][]string) ([]record.Record, error) {
	records := make([]record.Record, 0, len(rows))
	for i, row := range rows {
		if record.IsHeader(row) || isBlank(row) {
			continue
		}
		rec, err := record.DecodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
