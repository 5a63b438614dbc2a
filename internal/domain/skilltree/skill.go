// Package skilltree holds the pure domain model of the tracker: skills,
// dot-delimited category paths, urgency scoring and the graph description
// built from them. Nothing in this package touches storage or HTTP.
package skilltree

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	MinProficiency = 0
	MaxProficiency = 5
	MinPriority    = 1
	MaxPriority    = 3
)

var (
	ErrEmptyName          = errors.New("skill name is empty")
	ErrInvalidProficiency = errors.New("proficiency out of range")
	ErrInvalidPriority    = errors.New("priority out of range")
)

// Skill is a single tracked ability. ID is minted at creation time and is
// the only handle mutations address a skill by; (name, path) pairs are not
// required to be unique.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Proficiency int       `json:"proficiency"`
	Priority    int       `json:"priority"`
	Memo        string    `json:"memo"`
}

// Document is the unit of persistence: everything one profile stores.
type Document struct {
	Skills []Skill  `json:"skills"`
	Paths  []string `json:"paths"`
}

// EmptyDocument returns a document with non-nil slices so it marshals as
// {"skills": [], "paths": []} rather than nulls.
func EmptyDocument() Document {
	return Document{Skills: []Skill{}, Paths: []string{}}
}

// Validate checks the bounds enforced on mutation. Documents loaded from
// disk may carry out-of-range values; those are tolerated until edited.
func (s Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.Proficiency < MinProficiency || s.Proficiency > MaxProficiency {
		return ErrInvalidProficiency
	}
	if s.Priority < MinPriority || s.Priority > MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

// Normalize trims the free-text fields and the path. It does not clamp
// numeric values.
func (s Skill) Normalize() Skill {
	s.Name = strings.TrimSpace(s.Name)
	s.Path = strings.TrimSpace(s.Path)
	return s
}

// EnsureIDs mints an ID for every skill that has none and re-mints
// duplicates, healing legacy and imported documents on first load. It
// reports whether anything changed.
func (d *Document) EnsureIDs() bool {
	changed := false
	seen := make(map[uuid.UUID]bool, len(d.Skills))
	for i := range d.Skills {
		id := d.Skills[i].ID
		if id == uuid.Nil || seen[id] {
			d.Skills[i].ID = uuid.New()
			changed = true
		}
		seen[d.Skills[i].ID] = true
	}
	return changed
}

// IndexOf returns the position of the skill with the given ID, or -1.
func (d Document) IndexOf(id uuid.UUID) int {
	for i := range d.Skills {
		if d.Skills[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone deep-copies the document so cached copies never alias a caller's
// slices.
func (d Document) Clone() Document {
	out := Document{
		Skills: make([]Skill, len(d.Skills)),
		Paths:  make([]string, len(d.Paths)),
	}
	copy(out.Skills, d.Skills)
	copy(out.Paths, d.Paths)
	return out
}
