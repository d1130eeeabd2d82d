package search

import (
	"sort"

	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/candidate"
	"github.com/connecthub/omnisearch/internal/domain/search/sortkey"
)

// combine concatenates per-entity results in the canonical entity
// enumeration order. Entity types with no results contribute nothing.
func combine(byType map[entity.Type][]candidate.Candidate) []candidate.Candidate {
	var total int
	for _, list := range byType {
		total += len(list)
	}
	merged := make([]candidate.Candidate, 0, total)
	for _, t := range entity.All() {
		merged = append(merged, byType[t]...)
	}
	return merged
}

// sortCandidates orders the list in place by the requested key.
// The sort is stable: equal keys keep their prior order, so ties in a
// merged list resolve to the entity enumeration order.
func sortCandidates(list []candidate.Candidate, key sortkey.Key) {
	var less func(i, j int) bool
	switch key {
	case sortkey.Date:
		less = func(i, j int) bool { return list[i].CreatedAt().After(list[j].CreatedAt()) }
	case sortkey.Name:
		less = func(i, j int) bool { return list[i].DisplayName() < list[j].DisplayName() }
	case sortkey.Popularity:
		less = func(i, j int) bool { return list[i].ViewCount() > list[j].ViewCount() }
	default: // relevance
		less = func(i, j int) bool { return list[i].Score() > list[j].Score() }
	}
	sort.SliceStable(list, less)
}

// paginate returns the page slice of a sorted list.
// An out-of-range page yields an empty slice, never an error.
func paginate(list []candidate.Candidate, pageNum, limit int) []candidate.Candidate {
	start := (pageNum - 1) * limit
	if start >= len(list) || start < 0 {
		return []candidate.Candidate{}
	}
	end := start + limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// totalPages computes the page count for a result total.
func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
