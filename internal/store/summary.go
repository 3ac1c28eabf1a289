package store

import "github.com/roach88/fevertrack/internal/record"

// Status is the dashboard card for one subject.
type Status struct {
	Subject  record.Subject     `json:"subject"`
	Latest   *record.Record     `json:"latest,omitempty"`
	Delta    record.Temperature `json:"delta"`
	Severity record.Severity    `json:"severity"`
	Count    int                `json:"count"`

	// Alert is set when the latest reading is at or above the danger limit.
	Alert bool `json:"alert"`
}

// Summary returns one Status per roster subject, in roster order. Subjects
// without records report Normal with a nil Latest.
func (s *Store) Summary() []Status {
	subjects := s.roster.Subjects()
	out := make([]Status, 0, len(subjects))
	for _, sub := range subjects {
		latest, delta := s.LatestAndDelta(sub.ID)
		st := Status{
			Subject: sub,
			Latest:  latest,
			Delta:   delta,
			Count:   len(s.Query(sub.ID)),
		}
		if latest != nil {
			st.Severity = s.roster.Classify(latest.Temperature, sub.ID)
			st.Alert = st.Severity == record.Danger
		}
		out = append(out, st)
	}
	return out
}

// Recent returns up to limit records for subject, newest first. A limit of
// zero or less returns all of them. The reversed view is for display only;
// deletions go through DeleteMatching, never through positions in this slice.
func (s *Store) Recent(subject string, limit int) []record.Record {
	matched := s.Query(subject)
	n := len(matched)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]record.Record, 0, n)
	for i := len(matched) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, matched[i])
	}
	return out
}
