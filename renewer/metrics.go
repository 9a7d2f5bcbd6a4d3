package renewer

import "github.com/prometheus/client_golang/prometheus"

const namespace = "subscription_renewer"

// Metrics of the Renewer.
type Metrics struct {
	sent   *prometheus.CounterVec
	errors prometheus.Counter
}

// NewMetrics creates Renewer metrics and registers them in reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		sent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Number of sent renew transactions by expected outcome",
		}, []string{"action"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Number of subscriptions and plans failed to be processed",
		}),
	}

	for _, c := range []prometheus.Collector{m.sent, m.errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) incSent(a Action) {
	if m == nil {
		return
	}
	m.sent.WithLabelValues(a.String()).Inc()
}

func (m *Metrics) incErrors() {
	if m == nil {
		return
	}
	m.errors.Inc()
}
