package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/roach88/fevertrack/internal/record"
)

// ExportCSV writes a header and the records for subject (all records when
// empty) to w in insertion order.
func (s *Store) ExportCSV(w io.Writer, subject string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(record.Columns); err != nil {
		return fmt.Errorf("export header: %w", err)
	}
	for _, r := range s.Query(subject) {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("export record %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export flush: %w", err)
	}
	return nil
}
