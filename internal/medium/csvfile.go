package medium

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVFile stores rows in a delimited text file.
type CSVFile struct {
	path  string
	comma rune
}

// NewCSVFile returns a CSVFile at path. A zero delimiter means comma.
func NewCSVFile(path string, delimiter rune) (*CSVFile, error) {
	if delimiter == 0 {
		delimiter = ','
	}
	if delimiter == '"' || delimiter == '\r' || delimiter == '\n' || delimiter == 0xFFFD {
		return nil, fmt.Errorf("invalid delimiter %q", delimiter)
	}
	return &CSVFile{path: path, comma: delimiter}, nil
}

// ReadAll reads every row. A missing file returns an error wrapping
// fs.ErrNotExist.
func (f *CSVFile) ReadAll(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = f.comma
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return rows, nil
}

// WriteAll writes rows to a temp file in the target directory and renames it
// over the target, so readers never observe a half-written file.
func (f *CSVFile) WriteAll(ctx context.Context, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // No-op after a successful rename

	w := csv.NewWriter(tmp)
	w.Comma = f.comma
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
