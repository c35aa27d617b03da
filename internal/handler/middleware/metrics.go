package middleware

import (
	"strconv"

	"tripmatch/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests by route template, so /api/groups/:id stays one series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
