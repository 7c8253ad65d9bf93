package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the storefront collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	rpcDuration    *prometheus.HistogramVec
	catalogQueries *prometheus.CounterVec
	handoffs       *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "rpc_duration_seconds",
			Help:      "Latency of storefront gRPC calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
		catalogQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "catalog_queries_total",
			Help:      "Catalog queries by selected category.",
		}, []string{"category"}),
		handoffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "handoffs_total",
			Help:      "Buy-now hand-off links by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.rpcDuration,
		m.catalogQueries,
		m.handoffs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(method, code).Observe(d.Seconds())
}

func (m *Metrics) IncCatalogQuery(category string) {
	if m == nil {
		return
	}
	m.catalogQueries.WithLabelValues(category).Inc()
}

func (m *Metrics) IncHandoff(outcome string) {
	if m == nil {
		return
	}
	m.handoffs.WithLabelValues(outcome).Inc()
}

// HandoffCounter exposes one outcome series, e.g. for assertions.
func (m *Metrics) HandoffCounter(outcome string) prometheus.Counter {
	return m.handoffs.WithLabelValues(outcome)
}
