package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/divscout/divscout-api/internal/database"
	"github.com/divscout/divscout-api/shared/models"
)

// visibleDividendPredicate filters out low-confidence and logically deleted
// events. A NULL review_status counts as not deleted. Every dividend query
// must include it.
const visibleDividendPredicate = `de.confidence >= 0.8
		AND (de.review_status IS NULL OR de.review_status <> 'deleted')`

const listCompanyDividendsQuery = `
	SELECT de.dividend_id, de.declaration_date, de.ex_dividend_date, de.record_date,
		de.payment_date, de.amount, de.frequency, de.dividend_type,
		de.fiscal_year, de.fiscal_quarter, de.confidence
	FROM dividend_events de
	WHERE de.company_id = $1
		AND ` + visibleDividendPredicate + `
	ORDER BY de.ex_dividend_date DESC
`

const listRecentDividendsQuery = `
	SELECT c.ticker, c.company_name, de.ex_dividend_date, de.payment_date,
		de.amount, de.frequency, de.dividend_type
	FROM dividend_events de
	JOIN companies c ON de.company_id = c.company_id
	WHERE c.is_active = true
		AND ` + visibleDividendPredicate + `
	ORDER BY de.ex_dividend_date DESC
	LIMIT $1
`

// Date bounds are cast by Postgres; malformed input fails the query.
const listDividendsByExDateQuery = `
	SELECT c.ticker, c.company_name, de.ex_dividend_date, de.payment_date,
		de.amount, de.frequency, de.dividend_type
	FROM dividend_events de
	JOIN companies c ON de.company_id = c.company_id
	WHERE c.is_active = true
		AND de.ex_dividend_date >= $1::date
		AND de.ex_dividend_date <= $2::date
		AND ` + visibleDividendPredicate + `
	ORDER BY de.payment_date ASC
`

// DividendReadRepository reads dividend_events over one borrowed connection.
type DividendReadRepository struct {
	q database.Querier
}

func NewDividendReadRepository(q database.Querier) *DividendReadRepository {
	return &DividendReadRepository{q: q}
}

// ListCompanyDividends returns the visible events of one company, newest
// ex-dividend date first.
func (r *DividendReadRepository) ListCompanyDividends(ctx context.Context, companyID string) ([]models.DividendEvent, error) {
	rows, err := r.q.QueryContext(ctx, listCompanyDividendsQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company dividends: %w", err)
	}
	defer rows.Close()

	var events []models.DividendEvent
	for rows.Next() {
		e := models.DividendEvent{CompanyID: companyID}
		if err := rows.Scan(
			&e.DividendID, &e.DeclarationDate, &e.ExDividendDate, &e.RecordDate,
			&e.PaymentDate, &e.Amount, &e.Frequency, &e.DividendType,
			&e.FiscalYear, &e.FiscalQuarter, &e.Confidence,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dividend: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dividends: %w", err)
	}
	return events, nil
}

// ListRecentDividends returns up to limit visible events of active companies,
// newest ex-dividend date first. limit is passed through unchanged.
func (r *DividendReadRepository) ListRecentDividends(ctx context.Context, limit int) ([]models.DividendEvent, error) {
	rows, err := r.q.QueryContext(ctx, listRecentDividendsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent dividends: %w", err)
	}
	return scanListings(rows)
}

// ListDividendsByExDate returns visible events of active companies whose
// ex-dividend date lies in [startDate, endDate], earliest payment first.
func (r *DividendReadRepository) ListDividendsByExDate(ctx context.Context, startDate, endDate string) ([]models.DividendEvent, error) {
	rows, err := r.q.QueryContext(ctx, listDividendsByExDateQuery, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list dividend calendar: %w", err)
	}
	return scanListings(rows)
}

func scanListings(rows *sql.Rows) ([]models.DividendEvent, error) {
	defer rows.Close()

	var events []models.DividendEvent
	for rows.Next() {
		var e models.DividendEvent
		if err := rows.Scan(
			&e.Ticker, &e.CompanyName, &e.ExDividendDate, &e.PaymentDate,
			&e.Amount, &e.Frequency, &e.DividendType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dividend listing: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dividend listings: %w", err)
	}
	return events, nil
}
