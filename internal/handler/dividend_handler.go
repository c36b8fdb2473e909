package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/divscout/divscout-api/internal/query"
	"github.com/divscout/divscout-api/shared/cqrs"
	"github.com/divscout/divscout-api/shared/middleware"
	"github.com/divscout/divscout-api/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DividendQuerier defines the read-side operations used by DividendHandler.
type DividendQuerier interface {
	RecentDividends(ctx context.Context, q cqrs.RecentDividendsQuery) ([]models.DividendListing, error)
	DividendCalendar(ctx context.Context, q cqrs.DividendCalendarQuery) ([]models.DividendListing, error)
}

// DividendHandler handles the cross-company dividend listings.
type DividendHandler struct {
	queries DividendQuerier
	logger  zerolog.Logger
}

type DividendCalendarRequest struct {
	StartDate string `form:"start_date" validate:"required"`
	EndDate   string `form:"end_date" validate:"required"`
}

type DividendListResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	Data    []models.DividendListing `json:"data"`
}

type DividendCalendarResponse struct {
	Success   bool                     `json:"success"`
	Count     int                      `json:"count"`
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Data      []models.DividendListing `json:"data"`
}

const calendarParamsRequired = "start_date and end_date parameters required"

func NewDividendHandler(queries DividendQuerier, logger zerolog.Logger) *DividendHandler {
	return &DividendHandler{queries: queries, logger: logger}
}

// RecentDividends reads ?limit=N. A value that is not an integer falls back
// to the default; the upper cap is applied by the query service.
func (h *DividendHandler) RecentDividends(c *gin.Context) {
	limit := query.DefaultRecentLimit
	if raw, ok := c.GetQuery("limit"); ok {
		limit = parseLimit(raw)
	}

	listings, err := h.queries.RecentDividends(c.Request.Context(), cqrs.RecentDividendsQuery{Limit: limit})
	if err != nil {
		respondQueryError(c, h.logger, err, "recent dividends", map[int]string{
			http.StatusInternalServerError: "Failed to retrieve recent dividends",
		})
		return
	}

	c.JSON(http.StatusOK, DividendListResponse{Success: true, Count: len(listings), Data: listings})
}

// parseLimit keeps integers that overflow int on the right side of the cap:
// a huge positive value becomes MaxRecentLimit and a huge negative one
// becomes math.MinInt, which the store rejects like any negative limit.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err == nil {
		return n
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return math.MinInt
		}
		return query.MaxRecentLimit
	}
	return query.DefaultRecentLimit
}

func (h *DividendHandler) DividendCalendar(c *gin.Context) {
	var req DividendCalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, calendarParamsRequired)
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, calendarParamsRequired)
		return
	}

	listings, err := h.queries.DividendCalendar(c.Request.Context(), cqrs.DividendCalendarQuery{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respondQueryError(c, h.logger, err, "dividend calendar", map[int]string{
			http.StatusBadRequest:          calendarParamsRequired,
			http.StatusInternalServerError: "Failed to retrieve calendar data",
		})
		return
	}

	c.JSON(http.StatusOK, DividendCalendarResponse{
		Success:   true,
		Count:     len(listings),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Data:      listings,
	})
}
