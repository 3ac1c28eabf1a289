// Package record defines the health event data model for fevertrack.
//
// A Record is one logged temperature/medication event for one Subject. Records
// are immutable once created; the only way to change one is to delete it and
// append a replacement.
//
// # Canonical Forms
//
//   - Date: YYYY-MM-DD
//   - Time: HH:MM, 24-hour
//   - Temperature: fixed point tenths of a degree Celsius, written with
//     exactly one decimal digit
//   - Medication: one of a closed set (see Medications)
//
// Free text (dose, note, subject names) is NFC normalized so that names typed
// on different keyboards compare equal.
//
// # Severity
//
// Classify maps a temperature onto Normal, Caution or Danger:
//
//	value <= 37.5                  Normal
//	37.5 < value < danger limit    Caution
//	value >= danger limit          Danger
//
// The danger limit is per subject and comes from the Roster.
package record
