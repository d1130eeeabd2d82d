// Package search implements the multi-entity search orchestrator: concurrent
// fan-out across the entity repositories, entity-local relevance scoring,
// global merge and pagination, and facet aggregation.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/candidate"
	"github.com/connecthub/omnisearch/internal/domain/search/page"
	"github.com/connecthub/omnisearch/internal/domain/search/query"
	"github.com/connecthub/omnisearch/internal/logger"
	"github.com/connecthub/omnisearch/internal/metrics"
)

// historyTypeGlobal is the searchType recorded for cross-entity searches.
const historyTypeGlobal = "global"

// Service orchestrates searches across all entity types.
type Service struct {
	searchers map[entity.Type]*entitySearcher
	suggest   Suggester
	history   HistoryLogger
	timeout   time.Duration
}

// New creates a search service over one repository per entity type.
// suggest and history are optional; a nil value disables that concern.
func New(repos map[entity.Type]Repository, suggest Suggester, history HistoryLogger) *Service {
	searchers := make(map[entity.Type]*entitySearcher, len(repos))
	for t, repo := range repos {
		searchers[t] = newEntitySearcher(t, repo)
	}
	return &Service{searchers: searchers, suggest: suggest, history: history}
}

// WithEntityTimeout bounds each fan-out branch to d. Zero disables the bound.
func (s *Service) WithEntityTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

// GlobalSearch fans out one concurrent sub-search per entity type, merges
// the successful branches, and returns one globally sorted page.
//
// Branches settle independently: a failing repository contributes zero
// results and never aborts or delays its siblings, so the only failure the
// caller can observe is an invalid query (rejected before construction by
// query.New). Facets are computed over the full merged set before the page
// slice is taken.
func (s *Service) GlobalSearch(ctx context.Context, q *query.Query) (page.Result, error) {
	log := logger.FromContext(ctx)
	metrics.GlobalSearchesTotal.Inc()
	now := time.Now()

	types := entity.All()
	branches := make([][]candidate.Candidate, len(types))

	g := new(errgroup.Group)
	for i, t := range types {
		searcher, ok := s.searchers[t]
		if !ok {
			continue
		}
		i, searcher := i, searcher
		g.Go(func() error {
			branches[i] = s.runBranch(ctx, searcher, q, now, log)
			return nil // branch failures are absorbed, never group failures
		})
	}
	_ = g.Wait()

	byType := make(map[entity.Type][]candidate.Candidate, len(types))
	for i, t := range types {
		byType[t] = branches[i]
	}

	merged := combine(byType)
	sortCandidates(merged, q.SortBy())
	facets := computeFacets(merged, globalDimensions, true)

	total := len(merged)
	result := page.Result{
		Query:        q.Term(),
		TotalResults: total,
		Page:         q.Page(),
		Limit:        q.Limit(),
		TotalPages:   totalPages(total, q.Limit()),
		Results:      paginate(merged, q.Page(), q.Limit()),
		Facets:       facets,
	}

	if s.suggest != nil {
		result.Suggestions = s.suggest.Suggest(q.Term(), q.RequestingUserID())
	}

	s.logHistory(q, historyTypeGlobal, total)
	return result, nil
}

// SearchScoped runs a single entity searcher and returns its results with
// entity-specific facets. Repository failures follow the same absorption
// policy as the fan-out: an empty result set, never an error.
func (s *Service) SearchScoped(ctx context.Context, t entity.Type, q *query.Query) (page.Scoped, error) {
	log := logger.FromContext(ctx)
	now := time.Now()

	var results []candidate.Candidate
	if searcher, ok := s.searchers[t]; ok {
		results = s.runBranch(ctx, searcher, q, now, log)
	}

	scoped := page.Scoped{
		EntityType: t,
		Total:      len(results),
		Results:    paginate(results, q.Page(), q.Limit()),
		Facets:     computeFacets(results, scopedDimensions(t), false),
	}

	s.logHistory(q, t.String(), scoped.Total)
	return scoped, nil
}

// runBranch executes one entity search and absorbs its failure.
func (s *Service) runBranch(
	ctx context.Context, searcher *entitySearcher, q *query.Query, now time.Time, log *zap.Logger,
) []candidate.Candidate {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	results, err := searcher.search(ctx, q, now)
	metrics.ObserveEntitySearch(searcher.entityType.String(), time.Since(start), err != nil)
	if err != nil {
		log.Warn("entity search failed, contributing zero results",
			zap.String("entity_type", searcher.entityType.String()),
			zap.String("term", q.Term()),
			zap.Error(err),
		)
		return nil
	}
	return results
}

// logHistory records the search for the requesting user, best-effort.
func (s *Service) logHistory(q *query.Query, searchType string, resultCount int) {
	if s.history == nil || q.RequestingUserID() == "" {
		return
	}
	s.history.Log(q.RequestingUserID(), q.Term(), searchType, resultCount)
}
