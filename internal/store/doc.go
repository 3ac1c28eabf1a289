// Package store implements the health record store: the single owner of the
// record collection and the only component that reads or writes the backing
// medium.
//
// The store keeps the full collection in memory in insertion order and
// rewrites the whole medium on every mutation. Operations:
//
//   - Load: read the medium; a missing or corrupt medium yields no records
//   - Append: validate an Entry, append, persist
//   - Query: filter by subject, preserving order
//   - DeleteMatching: remove every record matching a Predicate, persist
//   - ClassifyTemperature: Normal / Caution / Danger for a subject
//   - LatestAndDelta: last record for a subject and its change from the one
//     before
//
// # Failure Semantics
//
// Mutations are all-or-nothing. A *record.ValidationError means nothing was
// attempted. A *PersistenceError means the medium rejected the rewrite and the
// in-memory collection is exactly what it was before the call. Nothing is
// retried.
//
// # Concurrency
//
// A Store is owned by one caller and is not safe for concurrent use. Two
// processes sharing a medium overwrite each other's full rewrites; the last
// write wins.
package store
