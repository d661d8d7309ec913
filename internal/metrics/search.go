package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and currency Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deskhub",
			Name:      "searches_total",
			Help:      "Total number of search queries",
		},
		[]string{"status"}, // "ok" / "error"
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "deskhub",
			Name:      "search_results_returned",
			Help:      "Matched candidates per search, pre-pagination",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		},
	)

	PageCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deskhub",
			Name:      "page_cache_total",
			Help:      "Search page cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	ConversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deskhub",
			Name:      "currency_conversions_total",
			Help:      "Total number of currency conversions",
		},
		[]string{"from", "to"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResultsReturned)
	prometheus.MustRegister(PageCacheTotal)
	prometheus.MustRegister(ConversionsTotal)
	searchMetricsRegistered = true
}
