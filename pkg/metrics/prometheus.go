package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver exports call counts and handler latency.
type PrometheusObserver struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewPrometheusObserver registers the collectors on reg; pass
// prometheus.DefaultRegisterer for the process-wide registry.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	o := &PrometheusObserver{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledgerkit",
			Name:      "calls_total",
			Help:      "Dispatched ledger operations by operation, mode and outcome.",
		}, []string{"operation", "mode", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ledgerkit",
			Name:      "call_duration_seconds",
			Help:      "Handler latency by operation and mode.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "mode"}),
	}
	for _, c := range []prometheus.Collector{o.calls, o.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *PrometheusObserver) RecordCall(ev CallEvent) {
	o.calls.WithLabelValues(ev.Operation, ev.Mode, ev.Outcome).Inc()
	o.latency.WithLabelValues(ev.Operation, ev.Mode).Observe(ev.Duration.Seconds())
}
