package medium

import (
	"context"
	"fmt"
	"strings"
)

// Medium is the narrow contract the store persists through.
//
// ReadAll returns every row in stored order, including a header row if the
// medium keeps one. A medium that has never been written returns an error
// wrapping fs.ErrNotExist or an empty slice.
//
// WriteAll replaces the full contents of the medium with rows.
type Medium interface {
	ReadAll(ctx context.Context) ([][]string, error)
	WriteAll(ctx context.Context, rows [][]string) error
}

// Backend names a Medium implementation.
type Backend string

const (
	BackendCSV    Backend = "csv"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ValidBackends lists the accepted backend names.
var ValidBackends = []Backend{BackendCSV, BackendSQLite, BackendMemory}

// ParseBackend parses a backend name case-insensitively.
func ParseBackend(s string) (Backend, error) {
	for _, b := range ValidBackends {
		if strings.EqualFold(s, string(b)) {
			return b, nil
		}
	}
	return "", fmt.Errorf("invalid backend %q: must be one of %v", s, ValidBackends)
}

// Options configures Open.
type Options struct {
	Backend   Backend
	Path      string
	Delimiter rune
}

// Open constructs the medium named by opts. The returned close function
// releases any held resources and is never nil.
func Open(opts Options) (Medium, func() error, error) {
	noop := func() error { return nil }

	switch opts.Backend {
	case BackendCSV, "":
		if opts.Path == "" {
			return nil, noop, fmt.Errorf("csv backend: empty path")
		}
		f, err := NewCSVFile(opts.Path, opts.Delimiter)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil
	case BackendSQLite:
		if opts.Path == "" {
			return nil, noop, fmt.Errorf("sqlite backend: empty path")
		}
		db, err := OpenSQLite(opts.Path)
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	case BackendMemory:
		return NewMemory(), noop, nil
	default:
		return nil, noop, fmt.Errorf("invalid backend %q: must be one of %v", opts.Backend, ValidBackends)
	}
}
