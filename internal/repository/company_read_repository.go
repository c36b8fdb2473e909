package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/divscout/divscout-api/internal/apperrors"
	"github.com/divscout/divscout-api/internal/database"
	"github.com/divscout/divscout-api/shared/models"
)

const listActiveCompaniesQuery = `
	SELECT company_id, ticker, company_name, sector, industry, is_active
	FROM companies
	WHERE is_active = true
	ORDER BY ticker
`

// Ticker lookups ignore is_active: inactive companies stay fetchable one by one.
const getCompanyByTickerQuery = `
	SELECT company_id, ticker, company_name, cik, sector, industry, market_cap_category, is_active
	FROM companies
	WHERE UPPER(ticker) = UPPER($1)
`

const resolveCompanyIDQuery = `
	SELECT company_id
	FROM companies
	WHERE UPPER(ticker) = UPPER($1)
`

// CompanyReadRepository reads the companies table over one borrowed connection.
type CompanyReadRepository struct {
	q database.Querier
}

func NewCompanyReadRepository(q database.Querier) *CompanyReadRepository {
	return &CompanyReadRepository{q: q}
}

// ListActiveCompanies returns every active company ordered by ticker.
func (r *CompanyReadRepository) ListActiveCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := r.q.QueryContext(ctx, listActiveCompaniesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(
			&c.CompanyID, &c.Ticker, &c.CompanyName,
			&c.Sector, &c.Industry, &c.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}
	return companies, nil
}

// GetCompanyByTicker returns the full company record matching ticker in any case.
func (r *CompanyReadRepository) GetCompanyByTicker(ctx context.Context, ticker string) (*models.Company, error) {
	var c models.Company
	err := r.q.QueryRowContext(ctx, getCompanyByTickerQuery, ticker).Scan(
		&c.CompanyID, &c.Ticker, &c.CompanyName, &c.CIK,
		&c.Sector, &c.Industry, &c.MarketCapCategory, &c.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "company %q", ticker)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// ResolveCompanyID maps a ticker, in any case, to its company_id.
func (r *CompanyReadRepository) ResolveCompanyID(ctx context.Context, ticker string) (string, error) {
	var id string
	err := r.q.QueryRowContext(ctx, resolveCompanyIDQuery, ticker).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.Wrapf(apperrors.ErrNotFound, "company %q", ticker)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve company: %w", err)
	}
	return id, nil
}
