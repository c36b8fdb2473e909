package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheFor marks every response of the route, errors included, as publicly
// cacheable for the given number of seconds.
func CacheFor(seconds int) gin.HandlerFunc {
	value := "public, max-age=" + strconv.Itoa(seconds)
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
