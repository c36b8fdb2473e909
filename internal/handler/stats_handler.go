package handler

import (
	"context"
	"net/http"

	"github.com/divscout/divscout-api/internal/query"
	"github.com/divscout/divscout-api/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StatsQuerier defines the read-side operations used by StatsHandler.
type StatsQuerier interface {
	GetStats(ctx context.Context) (*query.Stats, error)
}

type StatsHandler struct {
	queries StatsQuerier
	logger  zerolog.Logger
}

type StatsResponse struct {
	Success bool             `json:"success"`
	Data    models.StatsView `json:"data"`
}

func NewStatsHandler(queries StatsQuerier, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{queries: queries, logger: logger}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.queries.GetStats(c.Request.Context())
	if err != nil {
		respondQueryError(c, h.logger, err, "get stats", map[int]string{
			http.StatusInternalServerError: "Failed to retrieve statistics",
		})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Success: true, Data: stats.View()})
}
