// Package entity defines the searchable record categories and their payloads.
package entity

import (
	"fmt"
	"time"

	"github.com/connecthub/omnisearch/internal/domain"
)

// Type identifies one searchable record category.
type Type string

// Searchable entity types.
const (
	TypeUser     Type = "user"
	TypeJob      Type = "job"
	TypeEvent    Type = "event"
	TypeService  Type = "service"
	TypeInvestor Type = "investor"
	TypeProject  Type = "project"
)

// All returns every entity type in the canonical enumeration order.
// Merged result concatenation and tie-breaking depend on this order.
func All() []Type {
	return []Type{TypeUser, TypeJob, TypeEvent, TypeService, TypeInvestor, TypeProject}
}

// IsValid reports whether t is a known entity type.
func (t Type) IsValid() bool {
	switch t {
	case TypeUser, TypeJob, TypeEvent, TypeService, TypeInvestor, TypeProject:
		return true
	}
	return false
}

// String returns the wire name of the entity type.
func (t Type) String() string { return string(t) }

// Parse converts a wire name into a Type.
func Parse(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, s)
	}
	return t, nil
}

// Record is the common capability set every entity payload implements.
// It carries exactly what merging, sorting, and faceting need; rendering
// uses the concrete payload type.
type Record interface {
	ID() string
	Type() Type
	DisplayName() string
	CreatedAt() time.Time
	ViewCount() int

	// FacetValues returns the record's values for one facet dimension,
	// or nil when the record has no value for it. List-valued dimensions
	// return one element per value.
	FacetValues(dimension string) []string
}
