package cqrs

// ---------- Company queries ----------

// GetCompanyQuery fetches one company by ticker, case-insensitively.
type GetCompanyQuery struct {
	Ticker string
}

// ListCompanyDividendsQuery fetches the visible dividend history of a company.
type ListCompanyDividendsQuery struct {
	Ticker string
}

// ---------- Dividend queries ----------

// RecentDividendsQuery fetches the latest visible dividends across active companies.
type RecentDividendsQuery struct {
	Limit int
}

// DividendCalendarQuery fetches visible dividends whose ex-dividend date lies
// in [StartDate, EndDate]. Both bounds are passed to the store unparsed.
type DividendCalendarQuery struct {
	StartDate string
	EndDate   string
}
