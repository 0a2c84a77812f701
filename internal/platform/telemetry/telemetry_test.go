package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNew_Disabled(t *testing.T) {
	provider, err := New(context.Background(), &Config{Enabled: false})

	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestSearchMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := NewSearchMetrics(reg)
	require.NoError(t, err)

	m.ObserveSearch(true, 1, 2)
	m.ObserveSearch(true, 1, 0)
	m.ObserveSearch(false, 0, 7)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}

	queries := byName["ecotips_search_queries_total"]
	require.NotNil(t, queries)
	require.Len(t, queries.GetMetric(), 2)

	var total float64
	for _, metric := range queries.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	assert.InDelta(t, 3, total, 0)

	results := byName["ecotips_search_results"]
	require.NotNil(t, results)
	assert.Equal(t, uint64(3), results.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.InDelta(t, 9, results.GetMetric()[0].GetHistogram().GetSampleSum(), 0)
}

func TestSearchMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewSearchMetrics(reg)
	require.NoError(t, err)

	_, err = NewSearchMetrics(reg)
	assert.Error(t, err)
}

func TestMiddleware_PassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(TracingMiddleware("ecotips-test"), Middleware())
	router.GET("/api/v1/tips", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tips", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
