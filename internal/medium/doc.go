// Package medium provides backing media for the health record store.
//
// A Medium is a flat table of string rows. The store reads the whole table at
// startup and rewrites the whole table on every mutation; media never see
// partial updates. Three implementations are provided:
//
//   - CSVFile: a delimited file on local disk, rewritten via temp file + rename
//   - SQLite: a single table in a SQLite database (WAL mode)
//   - Memory: rows held in process, for tests and dry runs
//
// # Concurrency
//
// Media assume a single writing process. Two processes writing the same file
// race, and the last full rewrite wins.
package medium
