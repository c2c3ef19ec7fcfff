package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// Metrics holds the Prometheus collectors for ledger traffic.
type Metrics struct {
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	EventsPublished   *prometheus.CounterVec
	SinkDeliveries    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "provenance_ledger_operations_total",
			Help: "Ledger operations by name and outcome",
		}, []string{"operation", "outcome"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "provenance_ledger_operation_duration_seconds",
			Help:    "Time spent inside a ledger operation, lock wait included",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"operation"}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "provenance_ledger_events_published_total",
			Help: "Ledger events handed to subscribers by event name and outcome",
		}, []string{"event", "outcome"}),
		SinkDeliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "provenance_ledger_sink_deliveries_total",
			Help: "Broker acknowledgements of ledger events by sink, event name and outcome",
		}, []string{"sink", "event", "outcome"}),
	}
}

// ObserveOperation records one finished operation.
func (m *Metrics) ObserveOperation(operation string, err error, elapsed time.Duration) {
	m.Operations.WithLabelValues(operation, Outcome(err)).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveEvent(name string, err error) {
	m.EventsPublished.WithLabelValues(name, Outcome(err)).Inc()
}

// ObserveDelivery records a sink's final delivery result for one event.
func (m *Metrics) ObserveDelivery(sink, event string, err error) {
	m.SinkDeliveries.WithLabelValues(sink, event, Outcome(err)).Inc()
}

// Outcome turns an error into a low-cardinality label value.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch ledger.Kind(err) {
	case ledger.ErrUnauthorized:
		return "unauthorized"
	case ledger.ErrNotFound:
		return "not_found"
	case ledger.ErrInvalidQuantity:
		return "invalid_quantity"
	case ledger.ErrMalformedInput:
		return "malformed_input"
	case ledger.ErrInvalidTarget:
		return "invalid_target"
	case ledger.ErrInsufficientStock:
		return "insufficient_stock"
	case ledger.ErrPolicyViolation:
		return "policy_violation"
	case ledger.ErrAlreadyInitialized, ledger.ErrNotInitialized:
		return "initialization"
	}
	return "error"
}
