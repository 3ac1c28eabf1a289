package record

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Canonical layouts for Record.Date and Record.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Record is one logged health event.
type Record struct {
	// ID is a generated identifier. Empty for rows written before identifiers
	// were assigned.
	ID string `json:"id,omitempty"`

	Subject     string      `json:"subject"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Temperature Temperature `json:"temperature"`
	Medication  Medication  `json:"medication_type"`
	Dose        string      `json:"dose_amount,omitempty"`
	Note        string      `json:"note,omitempty"`
}

// Key is the compound identity used for deletion. Two records with equal
// keys cannot be told apart by key-based deletion.
type Key struct {
	Subject     string
	Date        string
	Time        string
	Temperature Temperature
}

// Key returns the record's compound identity.
func (r Record) Key() Key {
	return Key{Subject: r.Subject, Date: r.Date, Time: r.Time, Temperature: r.Temperature}
}

// Entry is a form submission with every field as typed. Empty Date or Time
// default to the submission time.
type Entry struct {
	Subject     string
	Date        string
	Time        string
	Temperature string
	Medication  string
	Dose        string
	Note        string
}

// Parse validates an entry against the roster and returns the canonical
// record. The record's ID is left empty for the store to assign.
func (r *Roster) Parse(e Entry, now time.Time) (Record, error) {
	subject, ok := r.Lookup(e.Subject)
	if !ok {
		return Record{}, invalid("subject", e.Subject, "not on roster")
	}

	temp, err := ParseTemperature(e.Temperature)
	if err != nil {
		return Record{}, invalid("temperature", e.Temperature, "%v", err)
	}
	if !temp.InDomain() {
		return Record{}, invalid("temperature", e.Temperature, "must be between %s and %s", MinTemperature, MaxTemperature)
	}

	date := now.Format(DateLayout)
	if strings.TrimSpace(e.Date) != "" {
		if date, err = ParseDate(e.Date); err != nil {
			return Record{}, invalid("date", e.Date, "%v", err)
		}
	}

	clock := now.Format(TimeLayout)
	if strings.TrimSpace(e.Time) != "" {
		if clock, err = ParseTime(e.Time); err != nil {
			return Record{}, invalid("time", e.Time, "%v", err)
		}
	}

	med, err := ParseMedication(e.Medication)
	if err != nil {
		return Record{}, invalid("medication", e.Medication, "%v", err)
	}

	return Record{
		Subject:     subject.ID,
		Date:        date,
		Time:        clock,
		Temperature: temp,
		Medication:  med,
		Dose:        cleanText(e.Dose),
		Note:        cleanText(e.Note),
	}, nil
}

var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"2006.01.02",
	"2006. 1. 2.",
	"20060102",
	"2006-1-2",
}

// ParseDate parses common date spellings and returns YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date, want YYYY-MM-DD")
}

var timeLayouts = []string{
	TimeLayout,
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"3:04:05PM",
}

// ParseTime parses 24-hour or 12-hour times and returns HH:MM. The Korean
// period markers 오전 and 오후 are accepted in place of AM and PM.
func ParseTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "오전"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "오전")) + " AM"
	case strings.HasPrefix(s, "오후"):
		s = strings.TrimSpace(strings.TrimPrefix(s, "오후")) + " PM"
	}
	s = strings.ToUpper(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized time, want HH:MM or H:MM AM/PM")
}

func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
