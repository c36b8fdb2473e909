package repository

import (
	"context"

	"github.com/divscout/divscout-api/internal/database"
	"github.com/divscout/divscout-api/shared/models"
)

// ReadSession is every read available on one borrowed connection.
type ReadSession interface {
	ListActiveCompanies(ctx context.Context) ([]models.Company, error)
	GetCompanyByTicker(ctx context.Context, ticker string) (*models.Company, error)
	ResolveCompanyID(ctx context.Context, ticker string) (string, error)

	ListCompanyDividends(ctx context.Context, companyID string) ([]models.DividendEvent, error)
	ListRecentDividends(ctx context.Context, limit int) ([]models.DividendEvent, error)
	ListDividendsByExDate(ctx context.Context, startDate, endDate string) ([]models.DividendEvent, error)

	CountActiveCompanies(ctx context.Context) (int64, error)
	CountVisibleDividends(ctx context.Context) (int64, error)
	CountCompaniesWithDividends(ctx context.Context) (int64, error)
}

// Session bundles the read repositories bound to a single connection.
type Session struct {
	*CompanyReadRepository
	*DividendReadRepository
	*StatsReadRepository
}

func NewSession(q database.Querier) *Session {
	return &Session{
		CompanyReadRepository:  NewCompanyReadRepository(q),
		DividendReadRepository: NewDividendReadRepository(q),
		StatsReadRepository:    NewStatsReadRepository(q),
	}
}

// Store opens read sessions on connections borrowed from the pool.
type Store struct {
	pool *database.Pool
}

func NewStore(pool *database.Pool) *Store {
	return &Store{pool: pool}
}

// WithSession runs fn with a session whose connection is released when fn returns.
func (s *Store) WithSession(ctx context.Context, fn func(ReadSession) error) error {
	return s.pool.WithConn(ctx, func(q database.Querier) error {
		return fn(NewSession(q))
	})
}
