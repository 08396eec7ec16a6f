package middleware

import (
	"strconv"
	"time"

	"rentalhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per matched route. Unmatched
// paths share one label so random URLs cannot grow the series set.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.Duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
