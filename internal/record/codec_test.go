package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Row(t *testing.T) {
	rec := Record{
		ID:          "0193",
		Subject:     "ain",
		Date:        "2025-01-13",
		Time:        "08:00",
		Temperature: 380,
		Medication:  MedicationMorning,
		Dose:        "3ml",
	}
	assert.Equal(t,
		[]string{"ain", "2025-01-13", "08:00", "38.0", "morning-dose", "3ml", "", "0193"},
		rec.Row())
	assert.Len(t, rec.Row(), len(Columns))
}

func TestDecodeRow(t *testing.T) {
	rec, err := DecodeRow([]string{"ain", "2025-01-13", "8:00", "38", "none", "", "", "abc"})
	require.NoError(t, err)
	assert.Equal(t, "08:00", rec.Time)
	assert.Equal(t, Temperature(380), rec.Temperature)
	assert.Equal(t, "abc", rec.ID)
}

func TestDecodeRow_WithoutID(t *testing.T) {
	rec, err := DecodeRow([]string{"hyuk", "2025-01-13", "20:00", "37.1", "", "", "note"})
	require.NoError(t, err)
	assert.Empty(t, rec.ID)
	assert.Equal(t, MedicationNone, rec.Medication)
	assert.Equal(t, "note", rec.Note)
}

func TestDecodeRow_Rejects(t *testing.T) {
	tests := map[string][]string{
		"short":           {"ain", "2025-01-13", "08:00"},
		"empty subject":   {"", "2025-01-13", "08:00", "37.0", "none", "", ""},
		"bad date":        {"ain", "13/01", "08:00", "37.0", "none", "", ""},
		"bad time":        {"ain", "2025-01-13", "noon", "37.0", "none", "", ""},
		"bad temperature": {"ain", "2025-01-13", "08:00", "hot", "none", "", ""},
		"bad medication":  {"ain", "2025-01-13", "08:00", "37.0", "candy", "", ""},
		"huge":            {"ain", "2025-01-13", "08:00", "1e30", "none", "", ""},
	}
	for name, row := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRow(row)
			assert.Error(t, err)
		})
	}
}

func TestIsHeader(t *testing.T) {
	assert.True(t, IsHeader(Columns))
	assert.True(t, IsHeader([]string{"\ufeffSubject", "date"}))
	assert.False(t, IsHeader([]string{"ain", "2025-01-13"}))
	assert.False(t, IsHeader(nil))
}
