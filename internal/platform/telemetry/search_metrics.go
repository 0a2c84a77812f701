package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetrics records how the tip search endpoint is used.
type SearchMetrics struct {
	queries *prometheus.CounterVec
	results prometheus.Histogram
}

// NewSearchMetrics creates search metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on /-/metrics.
func NewSearchMetrics(reg prometheus.Registerer) (*SearchMetrics, error) {
	m := &SearchMetrics{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecotips",
				Name:      "search_queries_total",
				Help:      "Total number of tip searches",
			},
			[]string{"has_text", "filters"},
		),
		results: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "ecotips",
				Name:      "search_results",
				Help:      "Number of tips returned per search",
				Buckets:   []float64{0, 1, 2, 3, 5, 10, 25, 50},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.queries, m.results} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveSearch records one search with the number of filters applied, excluding
// the text term, and the number of results.
func (m *SearchMetrics) ObserveSearch(hasText bool, filters, results int) {
	m.queries.WithLabelValues(strconv.FormatBool(hasText), strconv.Itoa(filters)).Inc()
	m.results.Observe(float64(results))
}
