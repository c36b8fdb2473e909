package handler

import (
	"context"
	"net/http"

	"github.com/divscout/divscout-api/internal/apperrors"
	"github.com/divscout/divscout-api/internal/logging"
	"github.com/divscout/divscout-api/internal/query"
	"github.com/divscout/divscout-api/shared/cqrs"
	"github.com/divscout/divscout-api/shared/middleware"
	"github.com/divscout/divscout-api/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CompanyQuerier defines the read-side operations used by CompanyHandler.
type CompanyQuerier interface {
	ListCompanies(ctx context.Context) ([]models.CompanySummary, error)
	GetCompany(ctx context.Context, q cqrs.GetCompanyQuery) (*models.CompanyView, error)
	ListCompanyDividends(ctx context.Context, q cqrs.ListCompanyDividendsQuery) (*query.CompanyDividends, error)
}

// CompanyHandler handles company-related HTTP requests.
type CompanyHandler struct {
	queries CompanyQuerier
	logger  zerolog.Logger
}

type ListCompaniesResponse struct {
	Success bool                    `json:"success"`
	Count   int                     `json:"count"`
	Data    []models.CompanySummary `json:"data"`
}

type CompanyResponse struct {
	Success bool                `json:"success"`
	Data    *models.CompanyView `json:"data"`
}

type CompanyDividendsResponse struct {
	Success bool                  `json:"success"`
	Ticker  string                `json:"ticker"`
	Count   int                   `json:"count"`
	Data    []models.DividendView `json:"data"`
}

func NewCompanyHandler(queries CompanyQuerier, logger zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{queries: queries, logger: logger}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.queries.ListCompanies(c.Request.Context())
	if err != nil {
		respondQueryError(c, h.logger, err, "list companies", map[int]string{
			http.StatusInternalServerError: "Failed to retrieve companies",
		})
		return
	}

	c.JSON(http.StatusOK, ListCompaniesResponse{Success: true, Count: len(companies), Data: companies})
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	ticker := c.Param("ticker")

	view, err := h.queries.GetCompany(c.Request.Context(), cqrs.GetCompanyQuery{Ticker: ticker})
	if err != nil {
		respondQueryError(c, h.logger, err, "get company", map[int]string{
			http.StatusNotFound:            "Company not found",
			http.StatusInternalServerError: "Failed to retrieve company",
		})
		return
	}

	c.JSON(http.StatusOK, CompanyResponse{Success: true, Data: view})
}

func (h *CompanyHandler) GetCompanyDividends(c *gin.Context) {
	ticker := c.Param("ticker")

	result, err := h.queries.ListCompanyDividends(c.Request.Context(), cqrs.ListCompanyDividendsQuery{Ticker: ticker})
	if err != nil {
		respondQueryError(c, h.logger, err, "list company dividends", map[int]string{
			http.StatusNotFound:            "Company not found",
			http.StatusInternalServerError: "Failed to retrieve dividends",
		})
		return
	}

	c.JSON(http.StatusOK, CompanyDividendsResponse{
		Success: true,
		Ticker:  result.Ticker,
		Count:   len(result.Dividends),
		Data:    result.Dividends,
	})
}

// respondQueryError answers with the status apperrors assigns to err and the
// caller's fixed message for it. A status without a message is answered as
// an internal failure. Internal failures are logged; their detail never
// reaches the body.
func respondQueryError(c *gin.Context, logger zerolog.Logger, err error, op string, messages map[int]string) {
	status := apperrors.Status(err)
	message, ok := messages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = messages[status]
	}
	if status == http.StatusInternalServerError {
		logFailure(c, logger, err, op)
	}
	middleware.RespondWithError(c, status, message)
}

func logFailure(c *gin.Context, logger zerolog.Logger, err error, op string) {
	l := logging.WithOperation(middleware.RequestLogger(c, logger), op)
	l.Error().Err(err).Str("path", c.Request.URL.Path).Msg("query failed")
}
