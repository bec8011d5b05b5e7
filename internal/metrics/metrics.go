// Package metrics provides Prometheus metrics for the roster server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "futevolucao"

// Metrics holds the server's Prometheus collectors on a dedicated
// registry. A nil *Metrics is valid and records nothing, so wiring it is
// optional for tests.
type Metrics struct {
	registry *prometheus.Registry

	roomsCreated      prometheus.Counter
	operations        *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
}

// New creates a Metrics instance with all collectors registered
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		roomsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_created_total",
			Help:      "Number of rooms created.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Game state operations attempted, by operation.",
		}, []string{"op"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Game state operations refused or failed, by operation.",
		}, []string{"op"}),
	}

	registry.MustRegister(m.roomsCreated, m.operations, m.operationFailures)
	return m
}

// RoomCreated records a room creation
func (m *Metrics) RoomCreated() {
	if m == nil {
		return
	}
	m.roomsCreated.Inc()
}

// Operation records an attempted game state operation
func (m *Metrics) Operation(op string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op).Inc()
}

// OperationFailed records a refused or failed operation
func (m *Metrics) OperationFailed(op string) {
	if m == nil {
		return
	}
	m.operationFailures.WithLabelValues(op).Inc()
}

// Handler returns an HTTP handler exposing the registry
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
