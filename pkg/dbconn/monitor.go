package dbconn

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/bootkit/pkg/logger"
)

// monitoredConn is the part of the Manager the monitor drives.
type monitoredConn interface {
	State() State
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context) error
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithInterval overrides the tick period.
func WithInterval(d time.Duration) MonitorOption {
	if d <= 0 {
		panic("WithInterval: duration must be > 0")
	}
	return func(mo *Monitor) { mo.interval = d }
}

// WithGracePeriod overrides how long a disconnect is left to the driver.
func WithGracePeriod(d time.Duration) MonitorOption {
	if d < 0 {
		panic("WithGracePeriod: duration must be >= 0")
	}
	return func(mo *Monitor) { mo.grace = d }
}

// Monitor periodically probes the connection and forces a reconnect when it
// stays down past the grace period, e.g. after the host slept and the driver
// never resumed on its own.
type Monitor struct {
	conn     monitoredConn
	interval time.Duration
	grace    time.Duration
	logger   *slog.Logger
	metrics  *Metrics
	now      func() time.Time

	mu                 sync.Mutex
	lastDisconnectedAt time.Time
	reconnecting       atomic.Bool

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newMonitor(conn monitoredConn, interval, grace time.Duration, log *slog.Logger, mt *Metrics, opts ...MonitorOption) *Monitor {
	mo := &Monitor{
		conn:     conn,
		interval: interval,
		grace:    grace,
		logger:   log,
		metrics:  mt,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(mo)
	}
	return mo
}

func (mo *Monitor) start(ctx context.Context) {
	ctx, mo.cancel = context.WithCancel(ctx)
	mo.wg.Add(1)
	go mo.run(ctx)
}

func (mo *Monitor) run(ctx context.Context) {
	defer mo.wg.Done()

	ticker := time.NewTicker(mo.interval)
	defer ticker.Stop()

	mo.logger.InfoContext(ctx, "connection monitor started",
		slog.Duration("interval", mo.interval),
		slog.Duration("grace_period", mo.grace),
	)
	for {
		select {
		case <-ctx.Done():
			mo.logger.Info("connection monitor stopped")
			return
		case <-ticker.C:
			mo.tick(ctx)
		}
	}
}

// Stop cancels the monitor. When it returns no further tick runs and any
// forced reconnect has finished. Safe for repeated calls.
func (mo *Monitor) Stop() {
	mo.stopOnce.Do(func() {
		mo.stopped.Store(true)
		if mo.cancel != nil {
			mo.cancel()
		}
		mo.wg.Wait()
	})
}

func (mo *Monitor) isStopped() bool { return mo.stopped.Load() }

// LastDisconnectedAt returns when the current outage was first observed, or zero.
func (mo *Monitor) LastDisconnectedAt() time.Time {
	mo.mu.Lock()
	defer mo.mu.Unlock()
	return mo.lastDisconnectedAt
}

// Reconnecting reports whether a forced reconnect is in flight.
func (mo *Monitor) Reconnecting() bool { return mo.reconnecting.Load() }

func (mo *Monitor) tick(ctx context.Context) {
	if ctx.Err() != nil || mo.reconnecting.Load() {
		return
	}

	state := mo.conn.State()
	switch state {
	case Connecting:
		return
	case Connected:
		err := mo.conn.Ping(ctx)
		if err == nil {
			if mo.clearDisconnected() {
				mo.logger.InfoContext(ctx, "database connection responsive again")
			}
			return
		}
		since, first := mo.markDisconnected()
		if first {
			mo.logger.WarnContext(ctx, "database connection unresponsive while connected", logger.Error(err))
			return
		}
		if since < mo.grace {
			return
		}
		mo.forceReconnect(ctx, state, since)
	default:
		since, first := mo.markDisconnected()
		if first {
			mo.logger.WarnContext(ctx, "database disconnected, waiting for driver recovery",
				slog.String("state", state.String()),
				slog.Duration("grace_period", mo.grace),
			)
			return
		}
		if since < mo.grace {
			mo.logger.DebugContext(ctx, "database still disconnected within grace period", logger.Duration(since))
			return
		}
		mo.forceReconnect(ctx, state, since)
	}
}

// forceReconnect runs Reconnect in the background unless one is in flight.
// On failure lastDisconnectedAt stays set so the next tick retries at once.
func (mo *Monitor) forceReconnect(ctx context.Context, state State, since time.Duration) {
	if !mo.reconnecting.CompareAndSwap(false, true) {
		return
	}
	mo.logger.WarnContext(ctx, "forcing database reconnect",
		slog.String("state", state.String()),
		slog.Duration("down_for", since),
	)

	mo.wg.Add(1)
	go func() {
		defer mo.wg.Done()
		defer mo.reconnecting.Store(false)

		if err := mo.conn.Reconnect(ctx); err != nil {
			mo.metrics.reconnect(false)
			mo.logger.ErrorContext(ctx, "forced database reconnect failed", logger.Error(err))
			return
		}
		mo.clearDisconnected()
		mo.metrics.reconnect(true)
		mo.logger.InfoContext(ctx, "database connection recovered")
	}()
}

func (mo *Monitor) markDisconnected() (time.Duration, bool) {
	mo.mu.Lock()
	defer mo.mu.Unlock()
	now := mo.now()
	if mo.lastDisconnectedAt.IsZero() {
		mo.lastDisconnectedAt = now
		return 0, true
	}
	return now.Sub(mo.lastDisconnectedAt), false
}

func (mo *Monitor) clearDisconnected() bool {
	mo.mu.Lock()
	defer mo.mu.Unlock()
	was := !mo.lastDisconnectedAt.IsZero()
	mo.lastDisconnectedAt = time.Time{}
	return was
}
