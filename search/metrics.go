package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/match"
)

// MetricsMonitor is a SearchMonitor that records Prometheus metrics.
type MetricsMonitor struct {
	queries     prometheus.Counter
	tierMatches *prometheus.CounterVec
	fallback    *prometheus.CounterVec
	results     prometheus.Histogram
	latency     prometheus.Histogram
}

var _ SearchMonitor = (*MetricsMonitor)(nil)

// NewMetricsMonitor registers the search metrics on reg.
func NewMetricsMonitor(reg prometheus.Registerer) *MetricsMonitor {
	factory := promauto.With(reg)
	return &MetricsMonitor{
		queries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "skillmatrix",
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Number of queries that reached the matching cascade.",
		}),
		tierMatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skillmatrix",
			Subsystem: "search",
			Name:      "tier_matches_total",
			Help:      "Profiles added to the merged list, by tier.",
		}, []string{"tier"}),
		fallback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skillmatrix",
			Subsystem: "search",
			Name:      "fallback_total",
			Help:      "Semantic fallback invocations, by outcome.",
		}, []string{"outcome"}),
		results: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "skillmatrix",
			Subsystem: "search",
			Name:      "results",
			Help:      "Size of the ranked result set.",
			Buckets:   []float64{0, 1, 2, 3},
		}),
		latency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "skillmatrix",
			Subsystem: "search",
			Name:      "latency_seconds",
			Help:      "Time spent per query, fallback included.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 3},
		}),
	}
}

func (m *MetricsMonitor) Start(_ match.Phrase) {
	m.queries.Inc()
}

func (m *MetricsMonitor) AfterTier(tier core.MatchType, _, added int) {
	m.tierMatches.WithLabelValues(string(tier)).Add(float64(added))
}

func (m *MetricsMonitor) FallbackInvoked(_ int) {
	m.fallback.WithLabelValues("invoked").Inc()
}

func (m *MetricsMonitor) FallbackFailed(_ error) {
	m.fallback.WithLabelValues("failed").Inc()
}

func (m *MetricsMonitor) Finish(ranked []core.Match, elapsed time.Duration) {
	m.results.Observe(float64(len(ranked)))
	m.latency.Observe(elapsed.Seconds())
}
