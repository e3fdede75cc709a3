package bench

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors a Run or Compare publishes to.
// Every field except MismatchesTotal is labeled by index: a Run uses its
// Name ("rplus" or "baseline" from the CLI), and Compare counts its queries
// under "lhs" and "rhs", so a single registry can host both sides.
type Metrics struct {
	AssignDuration  *prometheus.HistogramVec
	QueryDuration   *prometheus.HistogramVec
	QueriesTotal    *prometheus.CounterVec
	PointsReported  *prometheus.CounterVec
	MismatchesTotal prometheus.Counter
	TreeHeight      *prometheus.GaugeVec
}

// NewMetrics registers a fresh collector set on reg. Passing a dedicated
// registry (rather than prometheus.DefaultRegisterer) lets repeated
// benchmark runs within one process avoid "duplicate metrics collector
// registration" panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AssignDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rplusbench",
			Name:      "assign_duration_seconds",
			Help:      "Time to bulk-load a dataset into an index.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"index"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rplusbench",
			Name:      "query_duration_seconds",
			Help:      "Time to answer a single range query.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"index"}),
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rplusbench",
			Name:      "queries_total",
			Help:      "Number of range queries answered.",
		}, []string{"index"}),
		PointsReported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rplusbench",
			Name:      "points_reported_total",
			Help:      "Number of points returned across all ReportRange calls.",
		}, []string{"index"}),
		MismatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rplusbench",
			Name:      "compare_mismatches_total",
			Help:      "Number of queries where two indexes under comparison disagreed.",
		}),
		TreeHeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "rplusbench",
			Name:      "tree_height",
			Help:      "Number of levels from the root to a leaf, for indexes that report one.",
		}, []string{"index"}),
	}
	reg.MustRegister(m.AssignDuration, m.QueryDuration, m.QueriesTotal, m.PointsReported, m.MismatchesTotal, m.TreeHeight)
	return m
}
