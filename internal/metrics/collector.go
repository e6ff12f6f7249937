package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewMetrics creates and registers all API metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_request_latency_ms",
				Help:    "Latency of API requests in milliseconds",
				Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
			},
			[]string{"method", "route"},
		),
	}
}

// Middleware returns a fiber handler that records count and latency for every
// request, labeled by route pattern rather than raw path.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}
		route := c.Route().Path
		m.requestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(c.Method(), route).
			Observe(float64(time.Since(start).Microseconds()) / 1000.0)
		return err
	}
}
