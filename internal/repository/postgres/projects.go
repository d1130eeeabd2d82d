package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// ProjectRepository searches member projects.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a project repository.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

var projectFilterColumns = []filterColumn{
	{key: "category", column: "category"},
}

// Search returns projects matching term by substring containment.
func (r *ProjectRepository) Search(
	ctx context.Context, term string,
	filters map[string]string, includeInactive bool, _ string,
) ([]entity.Record, error) {
	args := []any{containsPattern(term)}
	where := []string{
		`(title ILIKE $1 OR owner ILIKE $1 OR description ILIKE $1 OR category ILIKE $1
		  OR EXISTS (SELECT 1 FROM unnest(technologies) AS t WHERE t ILIKE $1))`,
	}

	if !includeInactive {
		where = append(where, "active")
	}
	where, args = appendFilters(where, args, filters, projectFilterColumns)

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, owner, description, category, technologies,
		        view_count, created_at, active
		 FROM projects
		 WHERE `+strings.Join(where, " AND "),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(
			&p.ProjectID, &p.Title, &p.Owner, &p.Description, &p.Category,
			&p.Technologies, &p.Views, &p.Created, &p.Active,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return records, nil
}
