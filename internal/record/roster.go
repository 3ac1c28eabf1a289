package record

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultDangerLimit applies to subjects without an explicit limit and to
// identifiers that are not on the roster.
const DefaultDangerLimit Temperature = 390

// Subject is one child on the roster.
type Subject struct {
	// ID is the stable identifier stored in every record.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// DangerLimit is the lowest temperature classified as Danger.
	DangerLimit Temperature `json:"danger_limit"`
}

// Roster is the closed, ordered set of known subjects.
type Roster struct {
	subjects     []Subject
	defaultLimit Temperature
}

// NewRoster validates and builds a roster. Identifiers must be unique and
// non-empty; danger limits must lie above NormalCeiling and within the
// temperature domain. A zero DangerLimit takes defaultLimit.
func NewRoster(defaultLimit Temperature, subjects ...Subject) (*Roster, error) {
	if defaultLimit == 0 {
		defaultLimit = DefaultDangerLimit
	}
	if err := checkLimit(defaultLimit); err != nil {
		return nil, fmt.Errorf("default danger limit: %w", err)
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("roster has no subjects")
	}

	seen := make(map[string]bool, len(subjects))
	out := make([]Subject, 0, len(subjects))
	for i, s := range subjects {
		s.ID = strings.TrimSpace(s.ID)
		s.Name = norm.NFC.String(strings.TrimSpace(s.Name))
		if s.ID == "" {
			return nil, fmt.Errorf("subject[%d]: empty id", i)
		}
		key := strings.ToLower(s.ID)
		if seen[key] {
			return nil, fmt.Errorf("subject[%d]: duplicate id %q", i, s.ID)
		}
		seen[key] = true
		if s.Name == "" {
			s.Name = s.ID
		}
		if s.DangerLimit == 0 {
			s.DangerLimit = defaultLimit
		}
		if err := checkLimit(s.DangerLimit); err != nil {
			return nil, fmt.Errorf("subject %q: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return &Roster{subjects: out, defaultLimit: defaultLimit}, nil
}

func checkLimit(limit Temperature) error {
	if limit <= NormalCeiling || limit > MaxTemperature {
		return fmt.Errorf("danger limit %s outside (%s, %s]", limit, NormalCeiling, MaxTemperature)
	}
	return nil
}

// DefaultRoster returns the household's three children. The youngest has the
// lower 38.0°C danger limit.
func DefaultRoster() *Roster {
	r, err := NewRoster(DefaultDangerLimit,
		Subject{ID: "ayul", Name: "아율", DangerLimit: 390},
		Subject{ID: "ain", Name: "아인", DangerLimit: 390},
		Subject{ID: "hyuk", Name: "혁", DangerLimit: 380},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Subjects returns a copy of the roster in order.
func (r *Roster) Subjects() []Subject {
	out := make([]Subject, len(r.subjects))
	copy(out, r.subjects)
	return out
}

// DefaultLimit returns the danger limit used for unknown subjects.
func (r *Roster) DefaultLimit() Temperature {
	return r.defaultLimit
}

// Lookup finds a subject by identifier (case-insensitive) or display name.
func (r *Roster) Lookup(key string) (Subject, bool) {
	key = norm.NFC.String(strings.TrimSpace(key))
	if key == "" {
		return Subject{}, false
	}
	for _, s := range r.subjects {
		if strings.EqualFold(s.ID, key) {
			return s, true
		}
	}
	for _, s := range r.subjects {
		if s.Name == key {
			return s, true
		}
	}
	return Subject{}, false
}

// DangerLimit returns the danger limit for a subject identifier.
func (r *Roster) DangerLimit(id string) Temperature {
	if s, ok := r.Lookup(id); ok {
		return s.DangerLimit
	}
	return r.defaultLimit
}

// Classify classifies value against the subject's danger limit.
func (r *Roster) Classify(value Temperature, id string) Severity {
	return Classify(value, r.DangerLimit(id))
}
