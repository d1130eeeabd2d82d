// Package candidate defines a scored search hit.
package candidate

import (
	"time"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// Candidate is one record paired with its relevance score.
// Scores are local to the record's entity type; they are never
// normalized across types.
type Candidate struct {
	record entity.Record
	score  float64
}

// New creates a candidate. Negative scores are clamped to zero.
func New(record entity.Record, score float64) Candidate {
	if score < 0 {
		score = 0
	}
	return Candidate{record: record, score: score}
}

// Record returns the underlying entity payload.
func (c *Candidate) Record() entity.Record { return c.record }

// Score returns the relevance score.
func (c *Candidate) Score() float64 { return c.score }

// Type returns the record's entity type.
func (c *Candidate) Type() entity.Type { return c.record.Type() }

// DisplayName returns the record's display name.
func (c *Candidate) DisplayName() string { return c.record.DisplayName() }

// CreatedAt returns the record's creation time.
func (c *Candidate) CreatedAt() time.Time { return c.record.CreatedAt() }

// ViewCount returns the record's view count.
func (c *Candidate) ViewCount() int { return c.record.ViewCount() }
