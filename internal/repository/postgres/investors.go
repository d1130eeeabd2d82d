package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// InvestorRepository searches investor and fund profiles.
type InvestorRepository struct {
	pool *pgxpool.Pool
}

// NewInvestorRepository creates an investor repository.
func NewInvestorRepository(pool *pgxpool.Pool) *InvestorRepository {
	return &InvestorRepository{pool: pool}
}

var investorFilterColumns = []filterColumn{
	{key: "location", column: "location"},
	{key: "company", column: "firm_name"},
}

// Search returns investors matching term by substring containment.
func (r *InvestorRepository) Search(
	ctx context.Context, term string,
	filters map[string]string, includeInactive bool, _ string,
) ([]entity.Record, error) {
	args := []any{containsPattern(term)}
	where := []string{
		`(name ILIKE $1 OR firm_name ILIKE $1 OR thesis ILIKE $1 OR location ILIKE $1
		  OR EXISTS (SELECT 1 FROM unnest(investment_focus) AS f WHERE f ILIKE $1))`,
	}

	if !includeInactive {
		where = append(where, "active")
	}
	where, args = appendFilters(where, args, filters, investorFilterColumns)

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, firm_name, thesis, investment_focus, location,
		        fund_size_usd, view_count, created_at, active
		 FROM investors
		 WHERE `+strings.Join(where, " AND "),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query investors: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var inv entity.Investor
		if err := rows.Scan(
			&inv.InvestorID, &inv.Name, &inv.FirmName, &inv.Thesis, &inv.InvestmentFocus,
			&inv.Location, &inv.FundSizeUSD, &inv.Views, &inv.Created, &inv.Active,
		); err != nil {
			return nil, fmt.Errorf("scan investor: %w", err)
		}
		records = append(records, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investors: %w", err)
	}
	return records, nil
}
