// Package metrics defines Prometheus metrics for the degrees server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search outcomes used as the "outcome" label of SearchesTotal.
const (
	OutcomeFound        = "found"
	OutcomeNotConnected = "not_connected"
	OutcomeNotFound     = "not_found"
	OutcomeTimeout      = "timeout"
	OutcomeError        = "error"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "degrees_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degrees_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degrees_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degrees_searches_total",
			Help: "Shortest-path searches by outcome",
		},
		[]string{"outcome"},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "degrees_search_duration_seconds",
			Help:    "Shortest-path search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		},
	)

	SearchExpanded = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "degrees_search_expanded_nodes",
			Help:    "People expanded per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	SearchesShared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "degrees_searches_shared_total",
			Help: "Path requests answered by an identical in-flight search",
		},
	)

	DatasetPeople = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "degrees_dataset_people",
			Help: "People in the loaded dataset",
		},
	)

	DatasetMovies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "degrees_dataset_movies",
			Help: "Movies in the loaded dataset",
		},
	)

	DatasetCredits = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "degrees_dataset_credits",
			Help: "Person-movie credits in the loaded dataset",
		},
	)

	SkippedRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "degrees_dataset_skipped_rows",
			Help: "Rows dropped while loading the dataset",
		},
		[]string{"table"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SearchesTotal, SearchDuration, SearchExpanded, SearchesShared,
		DatasetPeople, DatasetMovies, DatasetCredits, SkippedRows,
	)
}
