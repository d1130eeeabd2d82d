package search

import (
	"context"
	"fmt"
	"time"

	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/candidate"
	"github.com/connecthub/omnisearch/internal/domain/search/query"
)

// entitySearcher runs the search pipeline for one entity type: fetch raw
// candidates from the repository, score them, and sort by the requested key.
// Pagination is left to the caller — global searches paginate the merged
// set, scoped searches paginate this list directly.
type entitySearcher struct {
	entityType entity.Type
	repo       Repository
	score      scoreFunc
}

func newEntitySearcher(t entity.Type, repo Repository) *entitySearcher {
	return &entitySearcher{entityType: t, repo: repo, score: scorerFor(t)}
}

// search returns the full scored, sorted candidate list for this entity.
// now is captured once per request so scoring is deterministic within it.
func (s *entitySearcher) search(ctx context.Context, q *query.Query, now time.Time) ([]candidate.Candidate, error) {
	records, err := s.repo.Search(ctx, q.Term(), q.Filters(), q.IncludeInactive(), q.RequestingUserID())
	if err != nil {
		return nil, fmt.Errorf("%s repository: %w", s.entityType, err)
	}

	candidates := make([]candidate.Candidate, 0, len(records))
	for _, rec := range records {
		score := s.score(rec, q.Term(), q.Filters(), now)
		candidates = append(candidates, candidate.New(rec, score))
	}

	sortCandidates(candidates, q.SortBy())
	return candidates, nil
}
