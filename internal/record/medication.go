package record

import (
	"fmt"
	"strings"
)

// Medication is the kind of medication given with a reading.
type Medication string

const (
	MedicationNone         Medication = "none"
	MedicationAntipyreticA Medication = "antipyretic-A"
	MedicationAntipyreticB Medication = "antipyretic-B"
	MedicationMorning      Medication = "morning-dose"
	MedicationNoon         Medication = "noon-dose"
	MedicationEvening      Medication = "evening-dose"
	MedicationOther        Medication = "other"
)

// Medications lists the closed set of medication types in display order.
var Medications = []Medication{
	MedicationNone,
	MedicationAntipyreticA,
	MedicationAntipyreticB,
	MedicationMorning,
	MedicationNoon,
	MedicationEvening,
	MedicationOther,
}

// ParseMedication matches s case-insensitively against Medications.
// Empty input is MedicationNone.
func ParseMedication(s string) (Medication, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MedicationNone, nil
	}
	for _, m := range Medications {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("must be one of %v", Medications)
}
