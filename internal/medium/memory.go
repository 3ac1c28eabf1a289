package medium

import (
	"context"
	"sync"
)

// Memory keeps rows in process. The zero value is an empty medium.
type Memory struct {
	mu   sync.Mutex
	rows [][]string
}

// NewMemory returns an empty in-memory medium.
func NewMemory(rows ...[]string) *Memory {
	return &Memory{rows: cloneRows(rows)}
}

// ReadAll returns a copy of the stored rows.
func (m *Memory) ReadAll(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRows(m.rows), nil
}

// WriteAll replaces the stored rows with a copy of rows.
func (m *Memory) WriteAll(ctx context.Context, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = cloneRows(rows)
	return nil
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
