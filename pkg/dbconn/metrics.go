package dbconn

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes connection lifecycle counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	state         *prometheus.GaugeVec
	attempts      prometheus.Counter
	failures      *prometheus.CounterVec
	reconnects    *prometheus.CounterVec
	probeFailures prometheus.Counter
	knownStates   []State
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connection_state",
			Help: "Current connection state, 1 for the active state",
		}, []string{"state"}),
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "db_connect_attempts_total",
			Help: "Total number of connection attempts",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_connect_failures_total",
			Help: "Total number of failed connection attempts by category",
		}, []string{"category"}),
		reconnects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_forced_reconnects_total",
			Help: "Total number of reconnects forced by the connection monitor",
		}, []string{"result"}),
		probeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "db_probe_failures_total",
			Help: "Total number of failed liveness probes",
		}),
		knownStates: []State{Disconnected, Connecting, Connected, Disconnecting},
	}
	if reg != nil {
		reg.MustRegister(m.state, m.attempts, m.failures, m.reconnects, m.probeFailures)
	}
	m.setState(Disconnected)
	return m
}

func (m *Metrics) setState(s State) {
	if m == nil {
		return
	}
	for _, known := range m.knownStates {
		v := 0.0
		if known == s {
			v = 1
		}
		m.state.WithLabelValues(string(known)).Set(v)
	}
}

func (m *Metrics) attempt() {
	if m == nil {
		return
	}
	m.attempts.Inc()
}

func (m *Metrics) failure(c Category) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(string(c)).Inc()
}

func (m *Metrics) reconnect(ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.reconnects.WithLabelValues(result).Inc()
}

func (m *Metrics) probeFailure() {
	if m == nil {
		return
	}
	m.probeFailures.Inc()
}
