// Package page defines the serializable search response aggregates.
package page

import (
	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/candidate"
)

// Facets is a per-dimension value→count histogram.
type Facets map[string]map[string]int

// Result is one page of a global search.
// TotalResults counts the full merged set before pagination; Facets are
// computed over that full set, not the visible page.
type Result struct {
	Query        string
	TotalResults int
	Page         int
	Limit        int
	TotalPages   int
	Results      []candidate.Candidate
	Facets       Facets
	Suggestions  []string
}

// Scoped is the result of a search restricted to a single entity type.
type Scoped struct {
	EntityType entity.Type
	Total      int
	Results    []candidate.Candidate
	Facets     Facets
}
