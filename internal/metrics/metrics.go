// Package metrics provides a centralized Prometheus metrics registry for the
// swim database.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	FilesReadTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "swimbase",
		Name:      "files_read_total",
		Help:      "Total number of meet result files read",
	})
	ResultRowsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "swimbase",
		Name:      "result_rows_total",
		Help:      "Total number of result detail rows processed",
	})
	ResultRowsSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "swimbase",
		Name:      "result_rows_skipped_total",
		Help:      "Result detail rows skipped during ingestion, by reason",
	}, []string{"reason"})
	MeetResultsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "swimbase",
		Name:      "meet_results_created_total",
		Help:      "Total number of individual meet results created",
	})
	SwimmersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "swimbase",
		Name:      "swimmers_created_total",
		Help:      "Total number of swimmer records created",
	})
	RelayGenerationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "swimbase",
		Name:      "relay_generations_total",
		Help:      "Total number of relay generation requests",
	})
)

// Gauge metrics
var (
	DatabaseClubs = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "swimbase",
		Name:      "database_clubs",
		Help:      "Number of clubs in the loaded database",
	})
	DatabaseSwimmers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "swimbase",
		Name:      "database_swimmers",
		Help:      "Number of swimmers in the loaded database",
	})
	DatabaseMeets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "swimbase",
		Name:      "database_meets",
		Help:      "Number of meets in the loaded database",
	})
	DatabaseMeetResults = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "swimbase",
		Name:      "database_meet_results",
		Help:      "Number of meet results in the loaded database",
	})
)

// Histogram metrics
var (
	LoadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "swimbase",
		Name:      "load_duration_seconds",
		Help:      "Duration of full database loads in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600},
	})
	RelayGenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "swimbase",
		Name:      "relay_generation_duration_seconds",
		Help:      "Duration of relay generation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(FilesReadTotal)
		registry.MustRegister(ResultRowsTotal)
		registry.MustRegister(ResultRowsSkippedTotal)
		registry.MustRegister(MeetResultsCreatedTotal)
		registry.MustRegister(SwimmersCreatedTotal)
		registry.MustRegister(RelayGenerationsTotal)

		// Register gauge metrics
		registry.MustRegister(DatabaseClubs)
		registry.MustRegister(DatabaseSwimmers)
		registry.MustRegister(DatabaseMeets)
		registry.MustRegister(DatabaseMeetResults)

		// Register histogram metrics
		registry.MustRegister(LoadDuration)
		registry.MustRegister(RelayGenerationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSkippedRow records a skipped result row with its skip reason.
func RecordSkippedRow(reason string) {
	ResultRowsSkippedTotal.WithLabelValues(reason).Inc()
}

// UpdateDatabaseSizes updates the database size gauges after a load.
func UpdateDatabaseSizes(clubs, swimmers, meets, meetResults int) {
	DatabaseClubs.Set(float64(clubs))
	DatabaseSwimmers.Set(float64(swimmers))
	DatabaseMeets.Set(float64(meets))
	DatabaseMeetResults.Set(float64(meetResults))
}
