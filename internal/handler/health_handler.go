package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "DivScout API"
	ServiceVersion = "1.0.0"

	// timestampLayout is ISO-8601 in UTC without a zone suffix.
	timestampLayout = "2006-01-02T15:04:05.000000"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler answers liveness probes without touching the store.
type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "online",
		Service:   ServiceName,
		Version:   ServiceVersion,
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}
