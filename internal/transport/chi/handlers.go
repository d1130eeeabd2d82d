package chi

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/query"
	"github.com/connecthub/omnisearch/internal/domain/search/sortkey"
	"github.com/connecthub/omnisearch/internal/repository/pagecache"
	healthuc "github.com/connecthub/omnisearch/internal/usecase/health"
)

// Reserved query parameters; every other parameter is passed through to the
// repositories as a structured filter.
var reservedParams = map[string]bool{
	"q":                true,
	"sort":             true,
	"page":             true,
	"limit":            true,
	"include_inactive": true,
	"user_id":          true,
}

// parseQuery builds a validated search query from request parameters,
// applying the server's configured page size bounds.
func (s *Server) parseQuery(values url.Values) (query.Query, error) {
	sortBy, err := sortkey.Parse(values.Get("sort"))
	if err != nil {
		return query.Query{}, err
	}

	pageNum, _ := strconv.Atoi(values.Get("page"))
	limit, _ := strconv.Atoi(values.Get("limit"))
	includeInactive, _ := strconv.ParseBool(values.Get("include_inactive"))

	var filters map[string]string
	for name := range values {
		if reservedParams[name] {
			continue
		}
		if filters == nil {
			filters = make(map[string]string)
		}
		filters[name] = values.Get(name)
	}

	return query.NewWithLimits(
		values.Get("q"), filters, sortBy,
		pageNum, limit, includeInactive, values.Get("user_id"),
		s.limits,
	)
}

// GET /api/v1/search
//
// Only anonymous requests are served from the page cache: user-scoped
// searches log history and blend personal suggestions, so they always run
// live.
func (s *Server) handleGlobalSearch(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	cacheable := s.cache != nil && q.RequestingUserID() == ""
	cacheKey := pagecache.Key("search", r.URL.Query())
	if cacheable {
		if body, ok := s.cache.Get(r.Context(), cacheKey); ok {
			writeRawJSON(w, http.StatusOK, body)
			return
		}
	}

	result, err := s.search.GlobalSearch(r.Context(), &q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	body := writeJSONBody(w, http.StatusOK, globalToResponse(result))
	if cacheable && body != nil {
		s.cache.Set(r.Context(), cacheKey, body)
	}
}

// GET /api/v1/search/{entityType}
func (s *Server) handleScopedSearch(w http.ResponseWriter, r *http.Request) {
	entityType, err := entity.Parse(chi.URLParam(r, "entityType"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	q, err := s.parseQuery(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	result, err := s.search.SearchScoped(r.Context(), entityType, &q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, scopedToResponse(result))
}

// GET /api/v1/suggestions
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	suggestions := s.suggest.Suggest(term, r.URL.Query().Get("user_id"))
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestionsResponse{Query: term, Suggestions: suggestions})
}

// GET /api/v1/history
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing_user_id", "user_id is required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries := s.history.History(userID, limit)
	writeJSON(w, http.StatusOK, historyToResponse(userID, entries))
}

// DELETE /api/v1/history
//
// With a user_id, clears that user's history; without one, clears all.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		s.history.Clear(userID)
	} else {
		s.history.ClearAll()
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/analytics
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	start, err := parseTimeParam(r.URL.Query().Get("start"), time.Time{})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_time", "start must be RFC 3339 or YYYY-MM-DD")
		return
	}
	end, err := parseTimeParam(r.URL.Query().Get("end"), time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_time", "end must be RFC 3339 or YYYY-MM-DD")
		return
	}

	writeJSON(w, http.StatusOK, analyticsToResponse(s.history.Analytics(start, end)))
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToResponse(report))
}

func parseTimeParam(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
