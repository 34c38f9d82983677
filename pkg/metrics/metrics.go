package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics holds the request counters exposed on the admin surface.
type Metrics struct {
	TotalRequests  int64            `json:"total_requests"`
	TotalErrors    int64            `json:"total_errors"`
	TotalLatencyMs int64            `json:"total_latency_ms"`
	StartTime      time.Time        `json:"start_time"`
	EndpointCounts map[string]int64 `json:"endpoint_counts"`
	StatusCodes    map[int]int64    `json:"status_codes"`
	mu             sync.Mutex
}

var (
	globalMetrics *Metrics
	once          sync.Once
)

// Get returns the singleton metrics instance.
func Get() *Metrics {
	once.Do(func() {
		globalMetrics = &Metrics{
			StartTime:      time.Now(),
			EndpointCounts: make(map[string]int64),
			StatusCodes:    make(map[int]int64),
		}
	})
	return globalMetrics
}

// Middleware records count, status and latency per request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			m := Get()
			m.mu.Lock()
			m.TotalRequests++
			m.TotalLatencyMs += time.Since(start).Milliseconds()
			m.EndpointCounts[c.Request().Method+" "+c.Path()]++
			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			m.StatusCodes[status]++
			if status >= http.StatusBadRequest {
				m.TotalErrors++
			}
			m.mu.Unlock()

			return err
		}
	}
}

// Snapshot copies the counters for serialization.
func (m *Metrics) Snapshot() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	endpoints := make(map[string]int64, len(m.EndpointCounts))
	for k, v := range m.EndpointCounts {
		endpoints[k] = v
	}
	statuses := make(map[int]int64, len(m.StatusCodes))
	for k, v := range m.StatusCodes {
		statuses[k] = v
	}

	return map[string]any{
		"total_requests":   m.TotalRequests,
		"total_errors":     m.TotalErrors,
		"total_latency_ms": m.TotalLatencyMs,
		"uptime_seconds":   int64(time.Since(m.StartTime).Seconds()),
		"endpoint_counts":  endpoints,
		"status_codes":     statuses,
	}
}
