package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// EventRepository searches community events.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates an event repository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

var eventFilterColumns = []filterColumn{
	{key: "location", column: "location"},
	{key: "category", column: "category"},
}

// Search returns events matching term by substring containment.
func (r *EventRepository) Search(
	ctx context.Context, term string,
	filters map[string]string, includeInactive bool, _ string,
) ([]entity.Record, error) {
	args := []any{containsPattern(term)}
	where := []string{
		`(title ILIKE $1 OR organizer ILIKE $1 OR description ILIKE $1
		  OR category ILIKE $1 OR location ILIKE $1)`,
	}

	if !includeInactive {
		where = append(where, "active")
	}
	where, args = appendFilters(where, args, filters, eventFilterColumns)

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, organizer, description, category, location,
		        starts_at, view_count, created_at, active
		 FROM events
		 WHERE `+strings.Join(where, " AND "),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(
			&e.EventID, &e.Title, &e.Organizer, &e.Description, &e.Category,
			&e.Location, &e.StartsAt, &e.Views, &e.Created, &e.Active,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return records, nil
}
