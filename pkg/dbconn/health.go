package dbconn

import (
	"context"
	"time"
)

// HealthReport is the connection health payload served by /api/health.
type HealthReport struct {
	Connected  bool      `json:"connected"`
	State      State     `json:"state"`
	Responsive bool      `json:"responsive"`
	Host       string    `json:"host"`
	Database   string    `json:"database"`
	Timestamp  time.Time `json:"timestamp"`
}

// Healthy reports whether the connection is both connected and responsive.
func (r HealthReport) Healthy() bool { return r.Connected && r.Responsive }

// HealthCheck reports the connection state. When connected it also pings the
// server; a failed ping yields Responsive=false while State stays Connected.
func (m *Manager) HealthCheck(ctx context.Context) HealthReport {
	m.mu.RLock()
	state, target := m.state, m.target
	m.mu.RUnlock()

	report := HealthReport{
		Connected: state == Connected,
		State:     state,
		Host:      target.Host(),
		Database:  target.Database,
		Timestamp: m.now().UTC(),
	}
	if report.Connected {
		report.Responsive = m.Ping(ctx) == nil
	}
	return report
}

// Healthcheck returns a closure suitable for readiness probes.
func (m *Manager) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if !m.IsConnected() {
			return ErrNotConnected
		}
		return m.Ping(ctx)
	}
}
