// Package suggest filters curated seed term lists into query suggestions.
package suggest

import "strings"

// MaxSuggestions caps the number of returned suggestions.
const MaxSuggestions = 10

// HistoryReader supplies a user's recent search terms, most recent first.
type HistoryReader interface {
	RecentTerms(userID string, limit int) []string
}

// Engine suggests search terms by case-insensitive substring filtering over
// two static seed lists. When a requesting user is known, that user's own
// recent matching terms surface ahead of the seeds. Order otherwise follows
// seed-list order; there is no ranking beyond the filter.
type Engine struct {
	popular  []string
	trending []string
	history  HistoryReader
}

// New creates an engine over the popular and trending seed lists.
func New(popular, trending []string) *Engine {
	return &Engine{popular: popular, trending: trending}
}

// WithHistory enables blending the user's recent terms into suggestions.
func (e *Engine) WithHistory(h HistoryReader) *Engine {
	e.history = h
	return e
}

// Suggest returns up to MaxSuggestions terms containing term,
// deduplicated case-insensitively with first occurrence kept.
// userID may be empty for anonymous searches.
func (e *Engine) Suggest(term, userID string) []string {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	seen := make(map[string]bool)
	out := make([]string, 0, MaxSuggestions)

	add := func(candidates []string) {
		for _, c := range candidates {
			if len(out) == MaxSuggestions {
				return
			}
			key := strings.ToLower(c)
			if seen[key] || !strings.Contains(key, needle) {
				continue
			}
			seen[key] = true
			out = append(out, c)
		}
	}

	if e.history != nil && userID != "" {
		add(e.history.RecentTerms(userID, MaxSuggestions))
	}
	add(e.popular)
	add(e.trending)

	return out
}
