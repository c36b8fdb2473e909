package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date rendering used for every dividend date field.
const DateLayout = "2006-01-02"

// CompanySummary is the listing projection of a company.
type CompanySummary struct {
	CompanyID   string  `json:"company_id"`
	Ticker      string  `json:"ticker"`
	CompanyName *string `json:"company_name"`
	Sector      *string `json:"sector"`
	Industry    *string `json:"industry"`
	IsActive    bool    `json:"is_active"`
}

// CompanyView is the full single-company projection.
type CompanyView struct {
	CompanyID         string  `json:"company_id"`
	Ticker            string  `json:"ticker"`
	CompanyName       *string `json:"company_name"`
	CIK               *string `json:"cik"`
	Sector            *string `json:"sector"`
	Industry          *string `json:"industry"`
	MarketCapCategory *string `json:"market_cap_category"`
	IsActive          bool    `json:"is_active"`
}

// DividendView is one entry of a company's dividend history.
type DividendView struct {
	DividendID      string   `json:"dividend_id"`
	DeclarationDate *string  `json:"declaration_date"`
	ExDividendDate  *string  `json:"ex_dividend_date"`
	RecordDate      *string  `json:"record_date"`
	PaymentDate     *string  `json:"payment_date"`
	Amount          *float64 `json:"amount"`
	Frequency       *string  `json:"frequency"`
	DividendType    *string  `json:"dividend_type"`
	FiscalYear      *int64   `json:"fiscal_year"`
	FiscalQuarter   *int64   `json:"fiscal_quarter"`
	Confidence      *float64 `json:"confidence"`
}

// DividendListing is a dividend joined with its company, as served by the
// recent and calendar feeds.
type DividendListing struct {
	Ticker         string   `json:"ticker"`
	CompanyName    *string  `json:"company_name"`
	ExDividendDate *string  `json:"ex_dividend_date"`
	PaymentDate    *string  `json:"payment_date"`
	Amount         *float64 `json:"amount"`
	Frequency      *string  `json:"frequency"`
	DividendType   *string  `json:"dividend_type"`
}

// StatsView holds the aggregate counts.
type StatsView struct {
	TotalCompanies         int64 `json:"total_companies"`
	TotalDividends         int64 `json:"total_dividends"`
	CompaniesWithDividends int64 `json:"companies_with_dividends"`
}

func NewCompanySummary(c Company) CompanySummary {
	return CompanySummary{
		CompanyID:   c.CompanyID,
		Ticker:      c.Ticker,
		CompanyName: nullableString(c.CompanyName),
		Sector:      nullableString(c.Sector),
		Industry:    nullableString(c.Industry),
		IsActive:    c.IsActive,
	}
}

func NewCompanyView(c Company) CompanyView {
	return CompanyView{
		CompanyID:         c.CompanyID,
		Ticker:            c.Ticker,
		CompanyName:       nullableString(c.CompanyName),
		CIK:               nullableString(c.CIK),
		Sector:            nullableString(c.Sector),
		Industry:          nullableString(c.Industry),
		MarketCapCategory: nullableString(c.MarketCapCategory),
		IsActive:          c.IsActive,
	}
}

func NewDividendView(e DividendEvent) DividendView {
	return DividendView{
		DividendID:      e.DividendID,
		DeclarationDate: nullableDate(e.DeclarationDate),
		ExDividendDate:  nullableDate(e.ExDividendDate),
		RecordDate:      nullableDate(e.RecordDate),
		PaymentDate:     nullableDate(e.PaymentDate),
		Amount:          nullableDecimal(e.Amount),
		Frequency:       nullableString(e.Frequency),
		DividendType:    nullableString(e.DividendType),
		FiscalYear:      nullableInt(e.FiscalYear),
		FiscalQuarter:   nullableInt(e.FiscalQuarter),
		Confidence:      nullableDecimal(e.Confidence),
	}
}

func NewDividendListing(e DividendEvent) DividendListing {
	return DividendListing{
		Ticker:         e.Ticker,
		CompanyName:    nullableString(e.CompanyName),
		ExDividendDate: nullableDate(e.ExDividendDate),
		PaymentDate:    nullableDate(e.PaymentDate),
		Amount:         nullableDecimal(e.Amount),
		Frequency:      nullableString(e.Frequency),
		DividendType:   nullableString(e.DividendType),
	}
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullableInt(i sql.NullInt64) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

func nullableDate(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	v := t.Time.Format(DateLayout)
	return &v
}

// nullableDecimal renders a stored zero as null, the same as an absent value.
// Clients already depend on that, so it is kept until the API is versioned.
func nullableDecimal(d decimal.NullDecimal) *float64 {
	if !d.Valid || d.Decimal.IsZero() {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}
