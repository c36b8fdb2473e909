package query

import (
	"context"

	"github.com/divscout/divscout-api/internal/repository"
	"github.com/divscout/divscout-api/shared/models"
	"github.com/rs/zerolog"
)

// Count is one independently computed statistic. When its query fails the
// value is Defaulted to zero and the request still succeeds; Err keeps the
// cause for the operational log only. Callers therefore cannot tell a real
// zero from a masked backend failure.
type Count struct {
	Name      string
	Value     int64
	Defaulted bool
	Err       error
}

// Stats holds the three aggregate counts.
type Stats struct {
	Companies              Count
	Dividends              Count
	CompaniesWithDividends Count
}

// View drops the per-count status for the client response.
func (s Stats) View() models.StatsView {
	return models.StatsView{
		TotalCompanies:         s.Companies.Value,
		TotalDividends:         s.Dividends.Value,
		CompaniesWithDividends: s.CompaniesWithDividends.Value,
	}
}

// DefaultedCounts lists the counts that fell back to zero.
func (s Stats) DefaultedCounts() []Count {
	var out []Count
	for _, c := range []Count{s.Companies, s.Dividends, s.CompaniesWithDividends} {
		if c.Defaulted {
			out = append(out, c)
		}
	}
	return out
}

type StatsQueryService struct {
	store  Store
	logger zerolog.Logger
}

func NewStatsQueryService(store Store, logger zerolog.Logger) *StatsQueryService {
	return &StatsQueryService{store: store, logger: logger}
}

// GetStats computes every count with its own query. Only a failure to obtain
// a connection fails the call.
func (s *StatsQueryService) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.store.WithSession(ctx, func(rs repository.ReadSession) error {
		stats.Companies = runCount(ctx, "total_companies", rs.CountActiveCompanies)
		stats.Dividends = runCount(ctx, "total_dividends", rs.CountVisibleDividends)
		stats.CompaniesWithDividends = runCount(ctx, "companies_with_dividends", rs.CountCompaniesWithDividends)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, c := range stats.DefaultedCounts() {
		s.logger.Warn().Err(c.Err).Str("count", c.Name).Msg("stats count defaulted to zero")
	}
	return &stats, nil
}

func runCount(ctx context.Context, name string, fn func(context.Context) (int64, error)) Count {
	n, err := fn(ctx)
	if err != nil {
		return Count{Name: name, Defaulted: true, Err: err}
	}
	return Count{Name: name, Value: n}
}
