package runtime

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/weft-ui/weft/pkg/reconcile"
)

// passMetrics holds the Prometheus metrics for reconciliation passes.
type passMetrics struct {
	passes       prometheus.Counter
	duration     prometheus.Histogram
	created      *prometheus.CounterVec
	reused       *prometheus.CounterVec
	gcRemoved    *prometheus.CounterVec
	stateEntries *prometheus.GaugeVec
}

func newPassMetrics(reg prometheus.Registerer) *passMetrics {
	factory := promauto.With(reg)
	return &passMetrics{
		passes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "reconcile",
			Name:      "passes_total",
			Help:      "Total number of reconciliation passes.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Subsystem: "reconcile",
			Name:      "pass_duration_seconds",
			Help:      "Duration of reconciliation passes.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		created: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "reconcile",
			Name:      "nodes_created_total",
			Help:      "Logical nodes created with fresh identities.",
		}, []string{"kind"}),
		reused: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "reconcile",
			Name:      "nodes_reused_total",
			Help:      "Logical nodes that kept their identity from the previous pass.",
		}, []string{"kind"}),
		gcRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "reconcile",
			Name:      "gc_removed_total",
			Help:      "State entries removed by post-pass garbage collection.",
		}, []string{"store"}),
		stateEntries: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weft",
			Subsystem: "reconcile",
			Name:      "state_entries",
			Help:      "Live state entries per store.",
		}, []string{"store"}),
	}
}

func (m *passMetrics) observe(res reconcile.Result, elapsed time.Duration, removedElements, removedComponents, userLen, elementLen int) {
	m.passes.Inc()
	m.duration.Observe(elapsed.Seconds())
	m.created.WithLabelValues("element").Add(float64(res.CreatedElements))
	m.created.WithLabelValues("component").Add(float64(res.CreatedComponents))
	m.reused.WithLabelValues("element").Add(float64(res.ReusedElements))
	m.reused.WithLabelValues("component").Add(float64(res.ReusedComponents))
	m.gcRemoved.WithLabelValues("element").Add(float64(removedElements))
	m.gcRemoved.WithLabelValues("component").Add(float64(removedComponents))
	m.stateEntries.WithLabelValues("element").Set(float64(elementLen))
	m.stateEntries.WithLabelValues("component").Set(float64(userLen))
}
