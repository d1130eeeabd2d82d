package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// UserRepository searches member profiles.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var userFilterColumns = []filterColumn{
	{key: "location", column: "location"},
	{key: "industry", column: "industry"},
}

// Search returns users matching term by substring containment across the
// profile text fields. excludeUserID removes the searching user from their
// own results.
func (r *UserRepository) Search(
	ctx context.Context, term string,
	filters map[string]string, includeInactive bool, excludeUserID string,
) ([]entity.Record, error) {
	args := []any{containsPattern(term)}
	where := []string{
		`(full_name ILIKE $1 OR headline ILIKE $1 OR bio ILIKE $1
		  OR industry ILIKE $1 OR location ILIKE $1
		  OR EXISTS (SELECT 1 FROM unnest(skills) AS sk WHERE sk ILIKE $1))`,
	}

	if !includeInactive {
		where = append(where, "active")
	}
	if excludeUserID != "" {
		args = append(args, excludeUserID)
		where = append(where, fmt.Sprintf("id <> $%d", len(args)))
	}
	where, args = appendFilters(where, args, filters, userFilterColumns)

	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, headline, bio, location, industry, skills,
		        profile_completeness, connection_count, view_count, created_at, active
		 FROM users
		 WHERE `+strings.Join(where, " AND "),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.UserID, &u.FullName, &u.Headline, &u.Bio, &u.Location, &u.Industry,
			&u.Skills, &u.ProfileCompleteness, &u.ConnectionCount, &u.Views,
			&u.Registered, &u.Active,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		records = append(records, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return records, nil
}
