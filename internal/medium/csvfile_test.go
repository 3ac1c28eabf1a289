package medium

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = [][]string{
	{"subject", "date", "time", "temperature", "medication_type", "dose_amount", "note", "id"},
	{"ain", "2025-01-13", "08:00", "38.0", "morning-dose", "3ml", "", "id-1"},
	{"hyuk", "2025-01-13", "09:30", "37.4", "none", "", "said \"hot\", then slept", "id-2"},
}

func TestCSVFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "health.csv")

	f, err := NewCSVFile(path, 0)
	require.NoError(t, err)
	require.NoError(t, f.WriteAll(ctx, sampleRows))

	rows, err := f.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRows, rows)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestCSVFile_TabDelimiter(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "health.tsv")

	f, err := NewCSVFile(path, '\t')
	require.NoError(t, err)
	require.NoError(t, f.WriteAll(ctx, sampleRows[:2]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ain\t2025-01-13\t08:00\t38.0")

	rows, err := f.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRows[:2], rows)
}

func TestCSVFile_MissingFile(t *testing.T) {
	f, err := NewCSVFile(filepath.Join(t.TempDir(), "absent.csv"), ',')
	require.NoError(t, err)

	_, err = f.ReadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCSVFile_RaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\nd,e\n"), 0o644))

	f, err := NewCSVFile(path, ',')
	require.NoError(t, err)

	rows, err := f.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}}, rows)
}

func TestCSVFile_InvalidDelimiter(t *testing.T) {
	_, err := NewCSVFile("x.csv", '"')
	assert.Error(t, err)
}

func TestCSVFile_WriteFailsOnUnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	// The target path is an existing directory, so the rename must fail.
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

	f, err := NewCSVFile(target, ',')
	require.NoError(t, err)
	assert.Error(t, f.WriteAll(context.Background(), sampleRows))
}
