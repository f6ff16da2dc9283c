package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	chartsAnalyzed prometheus.Counter
	matchVerdicts  *prometheus.CounterVec
	gunaScores     prometheus.Histogram
	latency        *prometheus.HistogramVec
	errorsTotal    *prometheus.CounterVec
	sinkPublished  *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		chartsAnalyzed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "matchmaking_charts_analyzed_total",
				Help: "Total number of natal charts analyzed",
			},
		),
		matchVerdicts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchmaking_match_verdicts_total",
				Help: "Total number of matches by final verdict",
			},
			[]string{"verdict"},
		),
		gunaScores: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "matchmaking_guna_score",
				Help:    "Distribution of Guna Milan scores",
				Buckets: prometheus.LinearBuckets(0, 4, 10),
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matchmaking_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchmaking_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		sinkPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchmaking_sink_published_total",
				Help: "Total number of match records handed to the result sink",
			},
			[]string{"backend"},
		),
	}
}

// RecordChartAnalyzed counts a completed chart analysis.
func (r *Recorder) RecordChartAnalyzed() {
	r.chartsAnalyzed.Inc()
}

// RecordMatchVerdict counts a final match verdict.
func (r *Recorder) RecordMatchVerdict(verdict string) {
	r.matchVerdicts.WithLabelValues(verdict).Inc()
}

// RecordGunaScore observes a Guna Milan total.
func (r *Recorder) RecordGunaScore(score int) {
	r.gunaScores.Observe(float64(score))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordSinkPublished counts a record published to a sink backend.
func (r *Recorder) RecordSinkPublished(backend string) {
	r.sinkPublished.WithLabelValues(backend).Inc()
}
