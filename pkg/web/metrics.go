package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yorrLorenz/eggprice/pkg/core"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
)

// metrics are the Prometheus collectors of one server
type metrics struct {
	registry    *prometheus.Registry
	estimates   *prometheus.CounterVec
	discrepancy prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		estimates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eggprice",
				Name:      "estimates_total",
				Help:      "Estimation queries received by the web form.",
			}, []string{"outcome"}),
		discrepancy: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "eggprice",
			Name:      "discrepancy",
			Help:      "Absolute difference between the Newton and Lagrange estimates.",
			Buckets:   prometheus.ExponentialBuckets(1e-12, 10, 12),
		}),
	}

	m.registry.MustRegister(m.estimates, m.discrepancy)
	return m
}

func (m *metrics) observe(result *core.Result, err error) {
	if err != nil {
		m.estimates.WithLabelValues(outcomeInvalid).Inc()
		return
	}
	m.estimates.WithLabelValues(outcomeOK).Inc()
	m.discrepancy.Observe(result.Discrepancy())
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
