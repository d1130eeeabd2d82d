package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// ServiceRepository searches professional service offerings.
type ServiceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository creates a service repository.
func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

var serviceFilterColumns = []filterColumn{
	{key: "location", column: "location"},
	{key: "category", column: "category"},
	{key: "company", column: "provider"},
}

// Search returns services matching term by substring containment.
func (r *ServiceRepository) Search(
	ctx context.Context, term string,
	filters map[string]string, includeInactive bool, _ string,
) ([]entity.Record, error) {
	args := []any{containsPattern(term)}
	where := []string{
		`(name ILIKE $1 OR provider ILIKE $1 OR description ILIKE $1
		  OR category ILIKE $1 OR location ILIKE $1)`,
	}

	if !includeInactive {
		where = append(where, "active")
	}
	where, args = appendFilters(where, args, filters, serviceFilterColumns)

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, provider, description, category, location,
		        rating, view_count, created_at, active
		 FROM services
		 WHERE `+strings.Join(where, " AND "),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(
			&s.ServiceID, &s.Name, &s.Provider, &s.Description, &s.Category,
			&s.Location, &s.Rating, &s.Views, &s.Created, &s.Active,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return records, nil
}
