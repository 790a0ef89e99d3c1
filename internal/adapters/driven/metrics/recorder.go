// Package metrics exposes narrative generation metrics in the Prometheus
// text format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

const namespace = "lexonarrative"

var _ driven.NarrativeMetrics = (*Recorder)(nil)

// Recorder implements driven.NarrativeMetrics on a private registry, so
// several recorders (one per test, say) never collide.
type Recorder struct {
	registry *prometheus.Registry

	generated       *prometheus.CounterVec
	rejected        *prometheus.CounterVec
	nonCompliant    *prometheus.CounterVec
	confidence      *prometheus.HistogramVec
	complianceScore prometheus.Histogram
	duration        *prometheus.HistogramVec
}

// NewRecorder creates a recorder and registers its collectors. Go runtime
// and process collectors are added when withRuntime is true.
func NewRecorder(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
	}

	r.generated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "narratives_generated_total",
		Help:      "Narratives generated, by mode and narrative type",
	}, []string{"mode", "type"})
	r.rejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_rejected_total",
		Help:      "Requests rejected as invalid input, by offending field",
	}, []string{"field"})
	r.nonCompliant = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "narratives_non_compliant_total",
		Help:      "Bar-mode narratives that failed at least one compliance check",
	}, []string{"type"})
	r.confidence = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "narrative_confidence",
		Help:      "Confidence score of generated narratives",
		Buckets:   []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95},
	}, []string{"mode"})
	r.complianceScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "narrative_compliance_score",
		Help:      "Compliance score of Bar-mode narratives",
		Buckets:   []float64{20, 40, 60, 80, 100},
	})
	r.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Time spent generating a narrative",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"mode"})

	r.registry.MustRegister(
		r.generated, r.rejected, r.nonCompliant,
		r.confidence, r.complianceScore, r.duration,
	)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// ObserveGenerated records a successful generation.
func (r *Recorder) ObserveGenerated(mode string, narrativeType domain.NarrativeType, confidence float64,
	compliance *domain.ComplianceCheck, elapsed time.Duration) {
	typeLabel := string(narrativeType)
	if typeLabel == "" {
		typeLabel = "none"
	}

	r.generated.WithLabelValues(mode, typeLabel).Inc()
	r.confidence.WithLabelValues(mode).Observe(confidence)
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())

	if compliance != nil {
		r.complianceScore.Observe(float64(compliance.ComplianceScore))
		if !compliance.IsCompliant {
			r.nonCompliant.WithLabelValues(typeLabel).Inc()
		}
	}
}

// ObserveRejected records a request rejected as invalid input.
func (r *Recorder) ObserveRejected(field string) {
	if field == "" {
		field = "unknown"
	}
	r.rejected.WithLabelValues(field).Inc()
}

// Handler serves the registry at a /metrics style endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
