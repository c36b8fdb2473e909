package models

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDate(s string) sql.NullTime {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return sql.NullTime{Time: t, Valid: true}
}

func validDecimal(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestNewDividendView(t *testing.T) {
	e := DividendEvent{
		DividendID:      "7",
		DeclarationDate: validDate("2024-01-30"),
		ExDividendDate:  validDate("2024-02-15"),
		PaymentDate:     validDate("2024-03-01"),
		Amount:          validDecimal("0.2400"),
		Frequency:       sql.NullString{String: "quarterly", Valid: true},
		FiscalYear:      sql.NullInt64{Int64: 2024, Valid: true},
		Confidence:      validDecimal("0.95"),
	}

	v := NewDividendView(e)

	require.NotNil(t, v.DeclarationDate)
	assert.Equal(t, "2024-01-30", *v.DeclarationDate)
	assert.Equal(t, "2024-02-15", *v.ExDividendDate)
	assert.Nil(t, v.RecordDate)
	assert.Equal(t, 0.24, *v.Amount)
	assert.Equal(t, 0.95, *v.Confidence)
	assert.Equal(t, "quarterly", *v.Frequency)
	assert.Nil(t, v.DividendType)
	assert.Equal(t, int64(2024), *v.FiscalYear)
	assert.Nil(t, v.FiscalQuarter)
}

func TestNewDividendView_ZeroRendersNull(t *testing.T) {
	v := NewDividendView(DividendEvent{
		DividendID: "1",
		Amount:     validDecimal("0.00"),
		Confidence: validDecimal("0"),
	})
	assert.Nil(t, v.Amount)
	assert.Nil(t, v.Confidence)
}

func TestNewDividendView_JSON(t *testing.T) {
	v := NewDividendView(DividendEvent{
		DividendID:     "3",
		ExDividendDate: validDate("2024-05-10"),
		Amount:         validDecimal("1.5"),
		Confidence:     validDecimal("0.9"),
	})

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"dividend_id": "3",
		"declaration_date": null,
		"ex_dividend_date": "2024-05-10",
		"record_date": null,
		"payment_date": null,
		"amount": 1.5,
		"frequency": null,
		"dividend_type": null,
		"fiscal_year": null,
		"fiscal_quarter": null,
		"confidence": 0.9
	}`, string(b))
}

func TestNewDividendListing(t *testing.T) {
	l := NewDividendListing(DividendEvent{
		Ticker:         "KO",
		CompanyName:    sql.NullString{String: "Coca-Cola", Valid: true},
		ExDividendDate: validDate("2024-03-14"),
		Amount:         validDecimal("0.485"),
		DividendType:   sql.NullString{String: "regular", Valid: true},
	})

	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ticker": "KO",
		"company_name": "Coca-Cola",
		"ex_dividend_date": "2024-03-14",
		"payment_date": null,
		"amount": 0.485,
		"frequency": null,
		"dividend_type": "regular"
	}`, string(b))
}

func TestCompanyProjections(t *testing.T) {
	c := Company{
		CompanyID:         "1",
		Ticker:            "AAPL",
		CompanyName:       sql.NullString{String: "Apple Inc.", Valid: true},
		CIK:               sql.NullString{String: "0000320193", Valid: true},
		Sector:            sql.NullString{String: "Technology", Valid: true},
		MarketCapCategory: sql.NullString{String: "Mega", Valid: true},
		IsActive:          true,
	}

	summary, err := json.Marshal(NewCompanySummary(c))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"company_id": "1",
		"ticker": "AAPL",
		"company_name": "Apple Inc.",
		"sector": "Technology",
		"industry": null,
		"is_active": true
	}`, string(summary))

	full, err := json.Marshal(NewCompanyView(c))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"company_id": "1",
		"ticker": "AAPL",
		"company_name": "Apple Inc.",
		"cik": "0000320193",
		"sector": "Technology",
		"industry": null,
		"market_cap_category": "Mega",
		"is_active": true
	}`, string(full))
}
