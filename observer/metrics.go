package observer

import (
	"github.com/prometheus/client_golang/prometheus"

	"andy.dev/again"
)

// Metrics counts retries with Prometheus.
type Metrics struct {
	retries *prometheus.CounterVec
}

// NewMetrics creates the retry counters under the given namespace and
// subsystem. They must be registered before they are scraped.
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "retries_total",
				Help:      "Total number of failed attempts that were retried, by operation and reason",
			},
			[]string{"operation", "reason"}, // reason: timeout, error
		),
	}
}

// Register registers the counters with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	return reg.Register(m.retries)
}

// MustRegister registers the counters with reg and panics on failure.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.retries)
}

// OnRetry returns an observer that counts retries of the named operation.
func (m *Metrics) OnRetry(operation string) again.OnRetryFunc {
	return func(err error, _ int) error {
		m.retries.WithLabelValues(operation, reason(err)).Inc()
		return nil
	}
}
