package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Company is a row of the companies table.
type Company struct {
	CompanyID         string
	Ticker            string
	CompanyName       sql.NullString
	CIK               sql.NullString
	Sector            sql.NullString
	Industry          sql.NullString
	MarketCapCategory sql.NullString
	IsActive          bool
}

// DividendEvent is a row of the dividend_events table. Ticker and CompanyName
// are only populated by queries that join the owning company.
type DividendEvent struct {
	DividendID      string
	CompanyID       string
	Ticker          string
	CompanyName     sql.NullString
	DeclarationDate sql.NullTime
	ExDividendDate  sql.NullTime
	RecordDate      sql.NullTime
	PaymentDate     sql.NullTime
	Amount          decimal.NullDecimal
	Frequency       sql.NullString
	DividendType    sql.NullString
	FiscalYear      sql.NullInt64
	FiscalQuarter   sql.NullInt64
	Confidence      decimal.NullDecimal
}
