package search

import (
	"context"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// Repository fetches raw candidate records for one entity type.
// Matching (substring containment) is the repository's responsibility;
// the core only scores and orders what it returns.
type Repository interface {
	Search(
		ctx context.Context, term string,
		filters map[string]string, includeInactive bool, excludeUserID string,
	) ([]entity.Record, error)
}

// Suggester supplies query suggestions for a term.
type Suggester interface {
	Suggest(term, userID string) []string
}

// HistoryLogger records completed searches for suggestions and analytics.
// Implementations must never fail the caller.
type HistoryLogger interface {
	Log(userID, term, searchType string, resultCount int)
}
