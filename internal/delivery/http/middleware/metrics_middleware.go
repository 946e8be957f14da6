package middleware

import (
	"time"

	"signup/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request count and latency per matched route.
type MetricsMiddleware struct {
	collector *metrics.Collector
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(collector *metrics.Collector) *MetricsMiddleware {
	return &MetricsMiddleware{collector: collector}
}

// Handle wraps next and records once the response status is known.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the final status before recording.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.collector.RecordRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
