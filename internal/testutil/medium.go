package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/roach88/fevertrack/internal/medium"
)

// ErrInjected is returned by FailingMedium when a failure is armed.
var ErrInjected = errors.New("injected medium failure")

// FailingMedium wraps a medium and fails reads or writes on demand.
type FailingMedium struct {
	medium.Medium

	mu         sync.Mutex
	failReads  bool
	failWrites bool
	writes     int
}

// NewFailingMedium wraps inner with failures disarmed.
func NewFailingMedium(inner medium.Medium) *FailingMedium {
	return &FailingMedium{Medium: inner}
}

// FailReads arms or disarms read failures.
func (m *FailingMedium) FailReads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = fail
}

// FailWrites arms or disarms write failures.
func (m *FailingMedium) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

// Writes returns the number of successful WriteAll calls.
func (m *FailingMedium) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// ReadAll returns ErrInjected while read failures are armed.
func (m *FailingMedium) ReadAll(ctx context.Context) ([][]string, error) {
	m.mu.Lock()
	fail := m.failReads
	m.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return m.Medium.ReadAll(ctx)
}

// WriteAll returns ErrInjected while write failures are armed.
func (m *FailingMedium) WriteAll(ctx context.Context, rows [][]string) error {
	m.mu.Lock()
	fail := m.failWrites
	m.mu.Unlock()
	if fail {
		return ErrInjected
	}
	if err := m.Medium.WriteAll(ctx, rows); err != nil {
		return err
	}
	m.mu.Lock()
	m.writes++
	m.mu.Unlock()
	return nil
}
