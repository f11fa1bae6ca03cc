package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lachho/resume/internal/types"
)

const metricsNamespace = "resume_analyser"

// Metrics collects analysis counters and score distributions in its own registry
type Metrics struct {
	registry *prometheus.Registry

	analyses           prometheus.Counter
	duration           prometheus.Histogram
	scores             *prometheus.HistogramVec
	extractionFailures *prometheus.CounterVec
}

// NewMetrics creates the analysis metrics and registers them
func NewMetrics() *Metrics {
	scoreBuckets := prometheus.LinearBuckets(10, 10, 10)

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "analyses_total",
			Help:      "Number of documents analysed.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent analysing one document.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "score",
			Help:      "Scores produced per component.",
			Buckets:   scoreBuckets,
		}, []string{"component"}),
		extractionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "extraction_failures_total",
			Help:      "Documents that could not be extracted, by reason.",
		}, []string{"reason"}),
	}

	m.registry.MustRegister(m.analyses, m.duration, m.scores, m.extractionFailures)
	return m
}

// ObserveAnalysis records one completed analysis
func (m *Metrics) ObserveAnalysis(bundle *types.AnalysisBundle, elapsed time.Duration) {
	m.analyses.Inc()
	m.duration.Observe(elapsed.Seconds())
	m.scores.WithLabelValues("ats").Observe(float64(bundle.ATS.Score))
	m.scores.WithLabelValues("content").Observe(float64(bundle.Content.Score))
	m.scores.WithLabelValues("overall").Observe(float64(bundle.Overall.FinalScore))
}

// ObserveExtractionFailure records a document that could not be turned into text
func (m *Metrics) ObserveExtractionFailure(reason string) {
	m.extractionFailures.WithLabelValues(reason).Inc()
}

// WriteTextfile writes the current metrics in the text exposition format,
// suitable for the node exporter textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
