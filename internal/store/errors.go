package store

import (
	"errors"
	"fmt"
)

// ErrMediumUnreadable is wrapped by a PersistenceError when a mutation is
// refused because the medium exists but could not be loaded.
var ErrMediumUnreadable = errors.New("medium exists but could not be loaded; fix or move it before writing")

// PersistenceError reports that the backing medium rejected a rewrite.
// The store's in-memory state is unchanged when it is returned.
type PersistenceError struct {
	// Op is the store operation that attempted the write ("append", "delete").
	Op string

	// Err is the medium's error.
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError returns true if err is or wraps a *PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
