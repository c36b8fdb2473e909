package query

import (
	"context"
	"strings"

	"github.com/divscout/divscout-api/internal/repository"
	"github.com/divscout/divscout-api/shared/cqrs"
	"github.com/divscout/divscout-api/shared/models"
)

// CompanyDividends is a company's visible dividend history.
type CompanyDividends struct {
	Ticker    string
	Dividends []models.DividendView
}

type CompanyQueryService struct {
	store Store
}

func NewCompanyQueryService(store Store) *CompanyQueryService {
	return &CompanyQueryService{store: store}
}

// ListCompanies returns the active companies ordered by ticker.
func (s *CompanyQueryService) ListCompanies(ctx context.Context) ([]models.CompanySummary, error) {
	views := []models.CompanySummary{}
	err := s.store.WithSession(ctx, func(rs repository.ReadSession) error {
		companies, err := rs.ListActiveCompanies(ctx)
		if err != nil {
			return err
		}
		for _, c := range companies {
			views = append(views, models.NewCompanySummary(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// GetCompany fetches one company by ticker regardless of its active flag.
func (s *CompanyQueryService) GetCompany(ctx context.Context, q cqrs.GetCompanyQuery) (*models.CompanyView, error) {
	var view models.CompanyView
	err := s.store.WithSession(ctx, func(rs repository.ReadSession) error {
		c, err := rs.GetCompanyByTicker(ctx, q.Ticker)
		if err != nil {
			return err
		}
		view = models.NewCompanyView(*c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListCompanyDividends resolves the ticker first and only reads dividends
// when the company exists.
func (s *CompanyQueryService) ListCompanyDividends(ctx context.Context, q cqrs.ListCompanyDividendsQuery) (*CompanyDividends, error) {
	result := &CompanyDividends{
		Ticker:    strings.ToUpper(q.Ticker),
		Dividends: []models.DividendView{},
	}
	err := s.store.WithSession(ctx, func(rs repository.ReadSession) error {
		companyID, err := rs.ResolveCompanyID(ctx, q.Ticker)
		if err != nil {
			return err
		}
		events, err := rs.ListCompanyDividends(ctx, companyID)
		if err != nil {
			return err
		}
		for _, e := range events {
			result.Dividends = append(result.Dividends, models.NewDividendView(e))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
