package chi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/connecthub/omnisearch/internal/domain/search/candidate"
	"github.com/connecthub/omnisearch/internal/domain/search/page"
	healthuc "github.com/connecthub/omnisearch/internal/usecase/health"
	"github.com/connecthub/omnisearch/internal/usecase/history"
)

// candidateDTO serializes one scored hit as the record's own fields plus
// entityType and relevanceScore.
type candidateDTO struct {
	c candidate.Candidate
}

func (d candidateDTO) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(d.c.Record())
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("flatten record: %w", err)
	}
	fields["entityType"] = d.c.Type().String()
	fields["relevanceScore"] = d.c.Score()

	return json.Marshal(fields)
}

func candidatesToDTO(results []candidate.Candidate) []candidateDTO {
	out := make([]candidateDTO, len(results))
	for i, c := range results {
		out[i] = candidateDTO{c: c}
	}
	return out
}

type globalSearchResponse struct {
	Query        string         `json:"query"`
	TotalResults int            `json:"totalResults"`
	Page         int            `json:"page"`
	Limit        int            `json:"limit"`
	TotalPages   int            `json:"totalPages"`
	Results      []candidateDTO `json:"results"`
	Facets       page.Facets    `json:"facets"`
	Suggestions  []string       `json:"suggestions"`
}

func globalToResponse(p page.Result) globalSearchResponse {
	resp := globalSearchResponse{
		Query:        p.Query,
		TotalResults: p.TotalResults,
		Page:         p.Page,
		Limit:        p.Limit,
		TotalPages:   p.TotalPages,
		Results:      candidatesToDTO(p.Results),
		Facets:       p.Facets,
		Suggestions:  p.Suggestions,
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	return resp
}

type scopedSearchResponse struct {
	EntityType string         `json:"entityType"`
	Total      int            `json:"total"`
	Results    []candidateDTO `json:"results"`
	Facets     page.Facets    `json:"facets"`
}

func scopedToResponse(p page.Scoped) scopedSearchResponse {
	return scopedSearchResponse{
		EntityType: p.EntityType.String(),
		Total:      p.Total,
		Results:    candidatesToDTO(p.Results),
		Facets:     p.Facets,
	}
}

type suggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

type historyEntryDTO struct {
	Timestamp   time.Time `json:"timestamp"`
	Term        string    `json:"term"`
	SearchType  string    `json:"searchType"`
	ResultCount int       `json:"resultCount"`
}

type historyResponse struct {
	UserID  string            `json:"userId"`
	Entries []historyEntryDTO `json:"entries"`
}

func historyToResponse(userID string, entries []history.Entry) historyResponse {
	resp := historyResponse{UserID: userID, Entries: make([]historyEntryDTO, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = historyEntryDTO{
			Timestamp:   e.Timestamp,
			Term:        e.Term,
			SearchType:  e.SearchType,
			ResultCount: e.ResultCount,
		}
	}
	return resp
}

type termCountDTO struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type analyticsResponse struct {
	TotalSearches  int            `json:"totalSearches"`
	UniqueUsers    int            `json:"uniqueUsers"`
	AverageResults float64        `json:"averageResults"`
	TopTerms       []termCountDTO `json:"topTerms"`
}

func analyticsToResponse(r history.Report) analyticsResponse {
	resp := analyticsResponse{
		TotalSearches:  r.TotalSearches,
		UniqueUsers:    r.UniqueUsers,
		AverageResults: r.AverageResults,
		TopTerms:       make([]termCountDTO, len(r.TopTerms)),
	}
	for i, t := range r.TopTerms {
		resp.TopTerms[i] = termCountDTO{Term: t.Term, Count: t.Count}
	}
	return resp
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func healthToResponse(r healthuc.Report) healthResponse {
	checks := make(map[string]string, len(r.Checks))
	for name, result := range r.Checks {
		checks[name] = string(result)
	}
	return healthResponse{Status: string(r.Status), Checks: checks}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
