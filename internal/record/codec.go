package record

import (
	"fmt"
	"strings"
)

// Columns is the persisted row layout. The first seven columns are fixed;
// id is appended last so rows written without it still decode.
var Columns = []string{
	"subject",
	"date",
	"time",
	"temperature",
	"medication_type",
	"dose_amount",
	"note",
	"id",
}

// minColumns is the number of columns a row must carry to decode.
const minColumns = 7

// Row encodes the record in Columns order.
func (r Record) Row() []string {
	return []string{
		r.Subject,
		r.Date,
		r.Time,
		r.Temperature.String(),
		string(r.Medication),
		r.Dose,
		r.Note,
		r.ID,
	}
}

// IsHeader reports whether row is a header row rather than data.
func IsHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.TrimPrefix(strings.TrimSpace(row[0]), "\ufeff")
	return strings.EqualFold(first, Columns[0])
}

// DecodeRow decodes a persisted row. Subjects are not checked against a
// roster so that history for a retired subject still loads.
func DecodeRow(row []string) (Record, error) {
	if len(row) < minColumns {
		return Record{}, fmt.Errorf("row has %d columns, want at least %d", len(row), minColumns)
	}

	subject := strings.TrimSpace(row[0])
	if subject == "" {
		return Record{}, fmt.Errorf("empty subject")
	}
	date, err := ParseDate(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("date %q: %w", row[1], err)
	}
	clock, err := ParseTime(row[2])
	if err != nil {
		return Record{}, fmt.Errorf("time %q: %w", row[2], err)
	}
	temp, err := ParseTemperature(row[3])
	if err != nil {
		return Record{}, fmt.Errorf("temperature %q: %w", row[3], err)
	}
	med, err := ParseMedication(row[4])
	if err != nil {
		return Record{}, fmt.Errorf("medication_type %q: %w", row[4], err)
	}

	rec := Record{
		Subject:     subject,
		Date:        date,
		Time:        clock,
		Temperature: temp,
		Medication:  med,
		Dose:        cleanText(row[5]),
		Note:        cleanText(row[6]),
	}
	if len(row) > minColumns {
		rec.ID = strings.TrimSpace(row[7])
	}
	return rec, nil
}
