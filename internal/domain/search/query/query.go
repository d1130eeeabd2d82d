// Package query defines the validated search query value object.
package query

import (
	"fmt"
	"strings"

	"github.com/connecthub/omnisearch/internal/domain"
	"github.com/connecthub/omnisearch/internal/domain/search/sortkey"
)

// Query parameter limits.
const (
	// MinTermLength is the shortest accepted search term after trimming.
	MinTermLength = 2
	DefaultLimit  = 20
	MaxLimit      = 100
)

// Query is a validated search query.
type Query struct {
	term             string
	filters          map[string]string
	sortBy           sortkey.Key
	page             int
	limit            int
	includeInactive  bool
	requestingUserID string
}

// Limits bounds the page size of constructed queries. The zero value
// falls back to the package defaults.
type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultLimits returns the built-in page size bounds.
func DefaultLimits() Limits {
	return Limits{DefaultLimit: DefaultLimit, MaxLimit: MaxLimit}
}

func (l Limits) normalized() Limits {
	if l.DefaultLimit <= 0 {
		l.DefaultLimit = DefaultLimit
	}
	if l.MaxLimit <= 0 {
		l.MaxLimit = MaxLimit
	}
	return l
}

// New validates and normalizes search parameters.
// The term is trimmed and must be at least MinTermLength characters;
// otherwise domain.ErrInvalidQuery is returned and no search may run.
// Defaults: sort=relevance, page=1, limit=20 (capped at 100).
func New(
	term string,
	filters map[string]string,
	sortBy sortkey.Key,
	page, limit int,
	includeInactive bool,
	requestingUserID string,
) (Query, error) {
	return NewWithLimits(term, filters, sortBy, page, limit, includeInactive, requestingUserID, DefaultLimits())
}

// NewWithLimits is New with configurable page size bounds.
func NewWithLimits(
	term string,
	filters map[string]string,
	sortBy sortkey.Key,
	page, limit int,
	includeInactive bool,
	requestingUserID string,
	limits Limits,
) (Query, error) {
	term = strings.TrimSpace(term)
	if len(term) < MinTermLength {
		return Query{}, fmt.Errorf("%w: term must be at least %d characters", domain.ErrInvalidQuery, MinTermLength)
	}
	if sortBy == "" {
		sortBy = sortkey.Relevance
	}
	if !sortBy.IsValid() {
		return Query{}, fmt.Errorf("%w: %q", domain.ErrUnknownSortKey, sortBy)
	}
	limits = limits.normalized()
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = limits.DefaultLimit
	}
	if limit > limits.MaxLimit {
		limit = limits.MaxLimit
	}

	return Query{
		term:             term,
		filters:          filters,
		sortBy:           sortBy,
		page:             page,
		limit:            limit,
		includeInactive:  includeInactive,
		requestingUserID: requestingUserID,
	}, nil
}

// Term returns the trimmed search term.
func (q *Query) Term() string { return q.term }

// Filters returns the structured filter map (possibly nil).
func (q *Query) Filters() map[string]string { return q.filters }

// SortBy returns the requested result ordering.
func (q *Query) SortBy() sortkey.Key { return q.sortBy }

// Page returns the 1-based page number.
func (q *Query) Page() int { return q.page }

// Limit returns the page size.
func (q *Query) Limit() int { return q.limit }

// IncludeInactive reports whether inactive records are searched.
func (q *Query) IncludeInactive() bool { return q.includeInactive }

// RequestingUserID returns the searching user's ID, or "" for anonymous.
func (q *Query) RequestingUserID() string { return q.requestingUserID }
