// Package sortkey defines the supported search result orderings.
package sortkey

import (
	"fmt"

	"github.com/connecthub/omnisearch/internal/domain"
)

// Key is a search result ordering.
type Key string

// Supported sort keys.
const (
	// Relevance orders by descending relevance score.
	Relevance Key = "relevance"
	// Date orders by descending creation time.
	Date Key = "date"
	// Name orders by ascending display name.
	Name Key = "name"
	// Popularity orders by descending view count.
	Popularity Key = "popularity"
)

// IsValid reports whether k is a known sort key.
func (k Key) IsValid() bool {
	switch k {
	case Relevance, Date, Name, Popularity:
		return true
	}
	return false
}

// String returns the wire name of the sort key.
func (k Key) String() string { return string(k) }

// Parse converts a wire name into a Key. Empty input defaults to Relevance.
func Parse(s string) (Key, error) {
	if s == "" {
		return Relevance, nil
	}
	k := Key(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSortKey, s)
	}
	return k, nil
}
