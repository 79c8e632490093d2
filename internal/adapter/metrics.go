package adapter

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "github.com/mouse-blink/watchman/internal/model"
)

// Metrics records analysis counters and exports them in the Prometheus text format.
type Metrics interface {
	RecordAnalysis(result m.AnalysisResult, lines int, duration time.Duration)
	RecordFailure(stage string)
	// WriteTextfile writes the current values to path, for the node exporter
	// textfile collector. An empty path is a no-op.
	WriteTextfile(path m.Path) error
	Gatherer() prometheus.Gatherer
}

// Registry holds the watchman metrics on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	AnalysesTotal    *prometheus.CounterVec
	FailuresTotal    *prometheus.CounterVec
	RouteLinks       prometheus.Histogram
	LinesPerAnalysis prometheus.Histogram
	AnalysisDuration prometheus.Histogram
}

// NewMetrics creates a Registry with all collectors registered.
func NewMetrics() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchman_analyses_total",
			Help: "Line sets analysed, by arrangement kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	r.FailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchman_failures_total",
			Help: "Analyses that failed before producing a verdict, by stage",
		},
		[]string{"stage"},
	)

	r.RouteLinks = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "watchman_route_links",
			Help:    "Link count of reported routes",
			Buckets: []float64{2, 3, 4},
		},
	)

	r.LinesPerAnalysis = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "watchman_lines_per_analysis",
			Help:    "Number of lines in each analysed set",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "watchman_analysis_duration_seconds",
			Help:    "Time spent in the kernel per analysis",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
	)

	return r
}

// RecordAnalysis counts one finished analysis.
func (r *Registry) RecordAnalysis(result m.AnalysisResult, lines int, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(string(result.Classification.Kind()), string(result.Outcome)).Inc()
	r.LinesPerAnalysis.Observe(float64(lines))
	r.AnalysisDuration.Observe(duration.Seconds())

	if result.Route != nil {
		r.RouteLinks.Observe(float64(result.Route.Links))
	}
}

// RecordFailure counts an analysis that errored at stage.
func (r *Registry) RecordFailure(stage string) {
	r.FailuresTotal.WithLabelValues(stage).Inc()
}

// WriteTextfile writes the registry to path.
func (r *Registry) WriteTextfile(path m.Path) error {
	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(string(path), r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
