package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-copilot-api/internal/metrics"
)

func metricsTestRouter(registry *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := metrics.NewWithRegistry(registry, nil)

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/ideas", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

// counterValue sums the samples of a counter family matching the endpoint label
func counterValue(t *testing.T, registry *prometheus.Registry, family, endpoint string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, metric := range mf.GetMetric() {
			matched := endpoint == ""
			for _, label := range metric.GetLabel() {
				if label.GetName() == "endpoint" && label.GetValue() == endpoint {
					matched = true
				}
			}
			if matched {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}

func TestMetricsMiddleware_RecordsRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	r := metricsTestRouter(registry)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ideas", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	got := counterValue(t, registry, "idea_copilot_http_requests_total", "/api/ideas")
	assert.Equal(t, float64(3), got)
}

func TestMetricsMiddleware_SkipsOperationalEndpoints(t *testing.T) {
	registry := prometheus.NewRegistry()
	r := metricsTestRouter(registry)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	got := counterValue(t, registry, "idea_copilot_http_requests_total", "")
	assert.Equal(t, float64(0), got, "health endpoint must not be counted")
}
