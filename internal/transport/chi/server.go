// Package chi is the HTTP adapter over the search core: it parses request
// parameters, delegates to the usecases, and serializes their results. No
// search semantics live here.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/connecthub/omnisearch/internal/domain"
	"github.com/connecthub/omnisearch/internal/domain/search/query"
	"github.com/connecthub/omnisearch/internal/logger"
	"github.com/connecthub/omnisearch/internal/metrics"
	"github.com/connecthub/omnisearch/internal/repository/pagecache"
	healthuc "github.com/connecthub/omnisearch/internal/usecase/health"
	historyuc "github.com/connecthub/omnisearch/internal/usecase/history"
	searchuc "github.com/connecthub/omnisearch/internal/usecase/search"
	suggestuc "github.com/connecthub/omnisearch/internal/usecase/suggest"
)

// Server exposes the search, suggestion, history, and health endpoints.
type Server struct {
	search  *searchuc.Service
	suggest *suggestuc.Engine
	history *historyuc.Store
	health  *healthuc.Service
	cache   *pagecache.Cache
	limits  query.Limits
	logger  *zap.Logger
}

// NewServer creates the HTTP API server. cache may be nil; a zero limits
// falls back to the query package defaults.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Engine,
	history *historyuc.Store,
	health *healthuc.Service,
	cache *pagecache.Cache,
	limits query.Limits,
	log *zap.Logger,
) *Server {
	return &Server{
		search:  search,
		suggest: suggest,
		history: history,
		health:  health,
		cache:   cache,
		limits:  limits,
		logger:  log,
	}
}

// Router builds the chi router with middleware and all routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.loggerMiddleware)
	r.Use(metrics.Middleware())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.handleGlobalSearch)
		r.Get("/search/{entityType}", s.handleScopedSearch)
		r.Get("/suggestions", s.handleSuggestions)
		r.Get("/history", s.handleHistory)
		r.Delete("/history", s.handleClearHistory)
		r.Get("/analytics", s.handleAnalytics)
	})
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// loggerMiddleware injects the request-scoped logger into the context.
func (s *Server) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.logger.With(zap.String("request_id", chiMiddleware.GetReqID(r.Context())))
		next.ServeHTTP(w, r.WithContext(logger.ContextWith(r.Context(), log)))
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeJSONBody writes body as JSON and returns the encoded bytes so callers
// can reuse them (the page cache stores the exact response).
func writeJSONBody(w http.ResponseWriter, status int, body any) []byte {
	data, err := json.Marshal(body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "encode response")
		return nil
	}
	writeRawJSON(w, status, data)
	return data
}

func writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// handleDomainError maps domain sentinel errors to HTTP responses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, "invalid_query", err.Error())
	case errors.Is(err, domain.ErrUnknownEntityType):
		writeError(w, http.StatusBadRequest, "unknown_entity_type", err.Error())
	case errors.Is(err, domain.ErrUnknownSortKey):
		writeError(w, http.StatusBadRequest, "unknown_sort_key", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		s.logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
