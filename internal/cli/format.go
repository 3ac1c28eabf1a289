package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/fevertrack/internal/record"
)

// recordLine renders one record as a fixed-width text row.
func recordLine(r record.Record, sev record.Severity) string {
	med := string(r.Medication)
	if r.Dose != "" {
		med += " " + r.Dose
	}
	line := fmt.Sprintf("%s %s  %-6s %5s°C  %-7s  %s", r.Date, r.Time, r.Subject, r.Temperature, sev, med)
	if r.Note != "" {
		line += "  " + r.Note
	}
	return strings.TrimRight(line, " ")
}

const recordHeader = "date       time   subject  temp     level    medication"
