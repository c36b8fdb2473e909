package repository

import (
	"context"
	"fmt"

	"github.com/divscout/divscout-api/internal/database"
)

const countActiveCompaniesQuery = `SELECT COUNT(*) FROM companies WHERE is_active = true`

const countVisibleDividendsQuery = `
	SELECT COUNT(*)
	FROM dividend_events de
	WHERE ` + visibleDividendPredicate

const countCompaniesWithDividendsQuery = `
	SELECT COUNT(DISTINCT de.company_id)
	FROM dividend_events de
	WHERE ` + visibleDividendPredicate

// StatsReadRepository runs the aggregate counts.
type StatsReadRepository struct {
	q database.Querier
}

func NewStatsReadRepository(q database.Querier) *StatsReadRepository {
	return &StatsReadRepository{q: q}
}

func (r *StatsReadRepository) CountActiveCompanies(ctx context.Context) (int64, error) {
	return r.count(ctx, "active companies", countActiveCompaniesQuery)
}

func (r *StatsReadRepository) CountVisibleDividends(ctx context.Context) (int64, error) {
	return r.count(ctx, "dividends", countVisibleDividendsQuery)
}

func (r *StatsReadRepository) CountCompaniesWithDividends(ctx context.Context) (int64, error) {
	return r.count(ctx, "companies with dividends", countCompaniesWithDividendsQuery)
}

func (r *StatsReadRepository) count(ctx context.Context, what, query string) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return n, nil
}
