package middleware

import (
	"strconv"
	"time"

	"addressbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request count, latency and in-flight requests
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a metrics middleware over the shared collectors
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle records one observation per request, labelled by route template
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		m.metrics.RequestsInFlight.Inc()
		defer m.metrics.RequestsInFlight.Dec()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		// c.Path() is the registered route, which keeps ids out of the labels
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)

		m.metrics.RequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
		m.metrics.RequestDuration.WithLabelValues(c.Request().Method, path, status).Observe(time.Since(start).Seconds())

		return nil
	}
}
