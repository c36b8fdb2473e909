package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery turns a handler panic into the generic 500 envelope.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("recovered from panic")
				RespondWithError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}
