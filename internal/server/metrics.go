package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics counts what the till actually does; the day gauge makes "did
// anyone forget to close the day" visible on a dashboard.
//
// Each server gets its own registry so tests can spin up servers freely
// without duplicate-registration panics.
type metrics struct {
	registry *prometheus.Registry

	ordersConfirmed prometheus.Counter
	orderCents      prometheus.Counter
	transitions     *prometheus.CounterVec
	dayOpen         prometheus.Gauge
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		ordersConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_orders_confirmed_total",
			Help: "Orders created by confirmed checkouts.",
		}),
		orderCents: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_order_centimos_total",
			Help: "Sum of confirmed order totals, in céntimos.",
		}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_transitions_total",
			Help: "Lifecycle transitions by operation and outcome.",
		}, []string{"op", "outcome"}),
		dayOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "kiosk_day_open",
			Help: "1 while a trading day is open.",
		}),
	}
}

func (m *metrics) transition(op string, applied bool) {
	outcome := "applied"
	if !applied {
		outcome = "rejected"
	}
	m.transitions.WithLabelValues(op, outcome).Inc()
}
