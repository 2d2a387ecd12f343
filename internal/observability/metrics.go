package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// query session.
type Metrics struct {
	DatasetRows            prometheus.Gauge
	DatasetCities          prometheus.Gauge
	DatasetLoadedTimestamp prometheus.Gauge
	LoadDuration           prometheus.Histogram

	// Query metrics.
	QueriesTotal    *prometheus.CounterVec // labels: filter={none,month,year,month_year,date_range,season}
	QueryErrors     prometheus.Counter
	SummaryDuration prometheus.Histogram
}

// NewMetrics creates and registers all session metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_stats",
			Name:      "dataset_rows",
			Help:      "Number of rows in the loaded dataset.",
		}),
		DatasetCities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_stats",
			Name:      "dataset_cities",
			Help:      "Number of cities derived from the dataset columns.",
		}),
		DatasetLoadedTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_stats",
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time at which the dataset was loaded.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_stats",
			Name:      "load_duration_seconds",
			Help:      "Duration of reading and indexing the CSV dataset.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_stats",
			Name:      "queries_total",
			Help:      "Summary queries answered, by filter kind.",
		}, []string{"filter"}),
		QueryErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_stats",
			Name:      "query_errors_total",
			Help:      "Queries that failed validation or computation.",
		}),
		SummaryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_stats",
			Name:      "summary_duration_seconds",
			Help:      "Duration of computing one seven-statistic summary.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}

	prometheus.MustRegister(
		m.DatasetRows,
		m.DatasetCities,
		m.DatasetLoadedTimestamp,
		m.LoadDuration,
		m.QueriesTotal,
		m.QueryErrors,
		m.SummaryDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DatasetRows:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_stats", Name: "dataset_rows"}),
		DatasetCities:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_stats", Name: "dataset_cities"}),
		DatasetLoadedTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_stats", Name: "dataset_loaded_timestamp_seconds"}),
		LoadDuration:           prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_stats", Name: "load_duration_seconds"}),
		QueriesTotal:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_stats", Name: "queries_total"}, []string{"filter"}),
		QueryErrors:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_stats", Name: "query_errors_total"}),
		SummaryDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_stats", Name: "summary_duration_seconds"}),
	}
}
