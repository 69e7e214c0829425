package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbeariaclassica/agenda-api/internal/metrics"
)

// MetricsMiddleware conta requisições e mede duração por rota registrada
// (FullPath, não a URL crua, para não explodir a cardinalidade).
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequests.WithLabelValues(
			path,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		m.HTTPDuration.WithLabelValues(path, c.Request.Method).
			Observe(time.Since(start).Seconds())
	}
}
