package query

import (
	"context"

	"github.com/divscout/divscout-api/internal/apperrors"
	"github.com/divscout/divscout-api/internal/repository"
	"github.com/divscout/divscout-api/shared/cqrs"
	"github.com/divscout/divscout-api/shared/models"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// ClampRecentLimit caps limit at MaxRecentLimit. Zero and negative values
// are left for the store to interpret.
func ClampRecentLimit(limit int) int {
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}

type DividendQueryService struct {
	store Store
}

func NewDividendQueryService(store Store) *DividendQueryService {
	return &DividendQueryService{store: store}
}

// RecentDividends returns the newest visible dividends of active companies.
func (s *DividendQueryService) RecentDividends(ctx context.Context, q cqrs.RecentDividendsQuery) ([]models.DividendListing, error) {
	limit := ClampRecentLimit(q.Limit)
	return s.listings(ctx, func(rs repository.ReadSession) ([]models.DividendEvent, error) {
		return rs.ListRecentDividends(ctx, limit)
	})
}

// DividendCalendar returns visible dividends of active companies whose
// ex-dividend date falls inside the inclusive range. Both bounds are required
// and are checked before the store is touched.
func (s *DividendQueryService) DividendCalendar(ctx context.Context, q cqrs.DividendCalendarQuery) ([]models.DividendListing, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return nil, apperrors.Wrap(apperrors.ErrBadRequest, "start_date and end_date are required")
	}
	return s.listings(ctx, func(rs repository.ReadSession) ([]models.DividendEvent, error) {
		return rs.ListDividendsByExDate(ctx, q.StartDate, q.EndDate)
	})
}

func (s *DividendQueryService) listings(ctx context.Context, read func(repository.ReadSession) ([]models.DividendEvent, error)) ([]models.DividendListing, error) {
	listings := []models.DividendListing{}
	err := s.store.WithSession(ctx, func(rs repository.ReadSession) error {
		events, err := read(rs)
		if err != nil {
			return err
		}
		for _, e := range events {
			listings = append(listings, models.NewDividendListing(e))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}
