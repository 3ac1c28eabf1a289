package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/fevertrack/internal/record"
)

//go:embed roster_schema.cue
var rosterSchema string

// rosterFile is the on-disk roster shape shared by YAML and CUE.
type rosterFile struct {
	DefaultDangerLimit float64         `yaml:"default_danger_limit" json:"default_danger_limit,omitempty"`
	Subjects           []rosterSubject `yaml:"subjects" json:"subjects"`
}

type rosterSubject struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name,omitempty"`
	DangerLimit float64 `yaml:"danger_limit" json:"danger_limit,omitempty"`
}

// LoadRoster reads a roster file. An empty path returns the default roster.
// The format is chosen by extension: .yaml/.yml or .cue.
func LoadRoster(path string) (*record.Roster, error) {
	if path == "" {
		return record.DefaultRoster(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var f rosterFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err = decodeYAMLRoster(data)
	case ".cue":
		f, err = decodeCUERoster(path, data)
	default:
		return nil, fmt.Errorf("roster %s: unsupported extension %q (want .yaml, .yml or .cue)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}

	roster, err := f.build()
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return roster, nil
}

func decodeYAMLRoster(data []byte) (rosterFile, error) {
	var f rosterFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return rosterFile{}, fmt.Errorf("empty roster")
		}
		return rosterFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

func decodeCUERoster(path string, data []byte) (rosterFile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(rosterSchema, cue.Filename("roster_schema.cue"))
	if err := schema.Err(); err != nil {
		return rosterFile{}, fmt.Errorf("compile roster schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return rosterFile{}, fmt.Errorf("parse cue: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Roster")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return rosterFile{}, fmt.Errorf("validate cue: %w", err)
	}

	var f rosterFile
	if err := unified.Decode(&f); err != nil {
		return rosterFile{}, fmt.Errorf("decode cue: %w", err)
	}
	return f, nil
}

func (f rosterFile) build() (*record.Roster, error) {
	subjects := make([]record.Subject, 0, len(f.Subjects))
	for _, s := range f.Subjects {
		subjects = append(subjects, record.Subject{
			ID:          s.ID,
			Name:        s.Name,
			DangerLimit: record.Celsius(s.DangerLimit),
		})
	}
	return record.NewRoster(record.Celsius(f.DefaultDangerLimit), subjects...)
}
