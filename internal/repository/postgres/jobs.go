package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// JobRepository searches open positions.
type JobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a job repository.
func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

var jobFilterColumns = []filterColumn{
	{key: "location", column: "location"},
	{key: "company", column: "company"},
	{key: "salaryRange", column: "salary_range"},
}

// Search returns jobs matching term by substring containment.
func (r *JobRepository) Search(
	ctx context.Context, term string,
	filters map[string]string, includeInactive bool, _ string,
) ([]entity.Record, error) {
	args := []any{containsPattern(term)}
	where := []string{
		`(title ILIKE $1 OR company ILIKE $1 OR description ILIKE $1 OR location ILIKE $1
		  OR EXISTS (SELECT 1 FROM unnest(required_skills) AS sk WHERE sk ILIKE $1))`,
	}

	if !includeInactive {
		where = append(where, "active")
	}
	where, args = appendFilters(where, args, filters, jobFilterColumns)

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, company, description, required_skills, location,
		        salary_range, view_count, posted_at, active
		 FROM jobs
		 WHERE `+strings.Join(where, " AND "),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(
			&j.JobID, &j.Title, &j.Company, &j.Description, &j.RequiredSkills,
			&j.Location, &j.SalaryRange, &j.Views, &j.PostedAt, &j.Active,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		records = append(records, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return records, nil
}
