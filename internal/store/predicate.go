package store

import "github.com/roach88/fevertrack/internal/record"

// Predicate selects records for DeleteMatching.
type Predicate func(record.Record) bool

// MatchKey matches every record with the given compound key. Records sharing
// a key are indistinguishable, so all of them match.
func MatchKey(k record.Key) Predicate {
	return func(r record.Record) bool {
		return r.Key() == k
	}
}

// MatchTuple is MatchKey spelled out field by field.
func MatchTuple(subject, date, clock string, temp record.Temperature) Predicate {
	return MatchKey(record.Key{Subject: subject, Date: date, Time: clock, Temperature: temp})
}

// MatchID matches the record with the given generated ID. An empty id matches
// nothing.
func MatchID(id string) Predicate {
	return func(r record.Record) bool {
		return id != "" && r.ID == id
	}
}

// MatchSubject matches every record for a subject identifier.
func MatchSubject(subject string) Predicate {
	return func(r record.Record) bool {
		return r.Subject == subject
	}
}

// MatchDate matches every record on a canonical date.
func MatchDate(date string) Predicate {
	return func(r record.Record) bool {
		return r.Date == date
	}
}

// And matches records satisfying every predicate. With no predicates it
// matches nothing.
func And(preds ...Predicate) Predicate {
	return func(r record.Record) bool {
		if len(preds) == 0 {
			return false
		}
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
