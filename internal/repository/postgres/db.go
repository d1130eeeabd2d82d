// Package postgres implements the per-entity search repositories over
// Postgres. Matching is plain ILIKE substring containment; scoring and
// ordering stay in the search usecase.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool parses databaseURL and creates a connection pool.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	return pool, nil
}

// WaitForReady pings the database until it responds or the timeout elapses.
func WaitForReady(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		err := pool.Ping(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database not ready after %s: %w", timeout, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// containsPattern builds the ILIKE pattern for substring containment,
// escaping the LIKE metacharacters in the term.
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// filterColumn maps one structured filter key to its table column.
type filterColumn struct {
	key    string
	column string
}

// appendFilters adds one ILIKE predicate per recognized filter key, in
// declaration order. Unknown filter keys are ignored.
func appendFilters(
	where []string, args []any, filters map[string]string, cols []filterColumn,
) ([]string, []any) {
	for _, fc := range cols {
		v, ok := filters[fc.key]
		if !ok || v == "" {
			continue
		}
		args = append(args, containsPattern(v))
		where = append(where, fmt.Sprintf("%s ILIKE $%d", fc.column, len(args)))
	}
	return where, args
}
