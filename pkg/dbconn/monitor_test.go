package dbconn

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrace = 10 * time.Second

func newTestMonitor(conn *fakeConn) (*Monitor, *fakeClock) {
	clock := newFakeClock()
	mo := newMonitor(conn, time.Hour, testGrace, slog.New(slog.DiscardHandler), nil)
	mo.now = clock.Now
	return mo, clock
}

func TestMonitor_Tick(t *testing.T) {
	t.Parallel()

	t.Run("disconnect within grace period is left to the driver", func(t *testing.T) {
		t.Parallel()
		conn := &fakeConn{state: Disconnected}
		mo, clock := newTestMonitor(conn)
		ctx := context.Background()

		mo.tick(ctx)
		assert.False(t, mo.LastDisconnectedAt().IsZero())
		first := mo.LastDisconnectedAt()

		clock.Advance(9 * time.Second)
		mo.tick(ctx)
		mo.wg.Wait()

		_, reconnects, _ := conn.counts()
		assert.Zero(t, reconnects)
		assert.Equal(t, first, mo.LastDisconnectedAt(), "first sighting is kept")
	})

	t.Run("reconnect is forced once grace period elapsed", func(t *testing.T) {
		t.Parallel()
		conn := &fakeConn{state: Disconnected}
		mo, clock := newTestMonitor(conn)
		ctx := context.Background()

		mo.tick(ctx)
		clock.Advance(testGrace)
		mo.tick(ctx)
		mo.wg.Wait()

		_, reconnects, _ := conn.counts()
		assert.Equal(t, 1, reconnects)
		assert.True(t, mo.LastDisconnectedAt().IsZero())
		assert.False(t, mo.Reconnecting())
	})

	t.Run("failed reconnect is retried on the next tick", func(t *testing.T) {
		t.Parallel()
		conn := &fakeConn{state: Disconnected, reconnectErr: errors.New("startup failed")}
		mo, clock := newTestMonitor(conn)
		ctx := context.Background()

		mo.tick(ctx)
		clock.Advance(testGrace)
		mo.tick(ctx)
		mo.wg.Wait()

		_, reconnects, _ := conn.counts()
		require.Equal(t, 1, reconnects)
		assert.False(t, mo.LastDisconnectedAt().IsZero())
		assert.False(t, mo.Reconnecting())

		mo.tick(ctx)
		mo.wg.Wait()
		_, reconnects, _ = conn.counts()
		assert.Equal(t, 2, reconnects)
	})

	t.Run("reconnect is not re-entered", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		conn := &fakeConn{state: Disconnected, release: release}
		mo, clock := newTestMonitor(conn)
		ctx := context.Background()

		mo.tick(ctx)
		clock.Advance(testGrace)
		for range 3 {
			mo.tick(ctx)
			clock.Advance(time.Second)
		}
		assert.True(t, mo.Reconnecting())

		close(release)
		mo.wg.Wait()

		_, reconnects, maxActive := conn.counts()
		assert.Equal(t, 1, reconnects)
		assert.Equal(t, 1, maxActive)
	})

	t.Run("unresponsive connection escalates after grace period", func(t *testing.T) {
		t.Parallel()
		conn := &fakeConn{state: Connected, pingErr: errPing}
		mo, clock := newTestMonitor(conn)
		ctx := context.Background()

		mo.tick(ctx)
		assert.False(t, mo.LastDisconnectedAt().IsZero())

		clock.Advance(5 * time.Second)
		mo.tick(ctx)
		mo.wg.Wait()
		_, reconnects, _ := conn.counts()
		assert.Zero(t, reconnects)

		clock.Advance(5 * time.Second)
		mo.tick(ctx)
		mo.wg.Wait()
		pings, reconnects, _ := conn.counts()
		assert.Equal(t, 3, pings)
		assert.Equal(t, 1, reconnects)
	})

	t.Run("responsive connection clears outage", func(t *testing.T) {
		t.Parallel()
		conn := &fakeConn{state: Disconnected}
		mo, clock := newTestMonitor(conn)
		ctx := context.Background()

		mo.tick(ctx)
		require.False(t, mo.LastDisconnectedAt().IsZero())

		conn.set(func(c *fakeConn) { c.state = Connected })
		clock.Advance(testGrace * 2)
		mo.tick(ctx)

		_, reconnects, _ := conn.counts()
		assert.Zero(t, reconnects)
		assert.True(t, mo.LastDisconnectedAt().IsZero())
	})

	t.Run("connecting is left alone", func(t *testing.T) {
		t.Parallel()
		conn := &fakeConn{state: Connecting}
		mo, _ := newTestMonitor(conn)

		mo.tick(context.Background())

		pings, reconnects, _ := conn.counts()
		assert.Zero(t, pings)
		assert.Zero(t, reconnects)
		assert.True(t, mo.LastDisconnectedAt().IsZero())
	})

	t.Run("cancelled context skips the tick", func(t *testing.T) {
		t.Parallel()
		conn := &fakeConn{state: Disconnected}
		mo, _ := newTestMonitor(conn)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mo.tick(ctx)
		assert.True(t, mo.LastDisconnectedAt().IsZero())
	})
}

func TestMonitor_StartStop(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{state: Connected}
	mo := newMonitor(conn, 5*time.Millisecond, testGrace, slog.New(slog.DiscardHandler), nil)
	mo.start(context.Background())

	require.Eventually(t, func() bool {
		pings, _, _ := conn.counts()
		return pings > 0
	}, time.Second, 5*time.Millisecond)

	mo.Stop()
	assert.True(t, mo.isStopped())
	after, _, _ := conn.counts()

	time.Sleep(30 * time.Millisecond)
	pings, _, _ := conn.counts()
	assert.Equal(t, after, pings, "no tick after Stop returned")

	assert.NotPanics(t, mo.Stop)
}

func TestMonitor_StopWaitsForReconnect(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	conn := &fakeConn{state: Disconnected, release: release}
	mo, clock := newTestMonitor(conn)
	ctx, cancel := context.WithCancel(context.Background())
	mo.cancel = cancel

	mo.tick(ctx)
	clock.Advance(testGrace)
	mo.tick(ctx)
	require.True(t, mo.Reconnecting())

	// Stop cancels ctx, which unblocks the in-flight reconnect.
	mo.Stop()
	assert.False(t, mo.Reconnecting())
}

func TestMonitorOptions(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithInterval(0) })
	assert.Panics(t, func() { WithGracePeriod(-time.Second) })
	assert.NotPanics(t, func() { WithGracePeriod(0) })

	mo := newMonitor(&fakeConn{}, time.Minute, time.Minute, slog.New(slog.DiscardHandler), nil,
		WithInterval(time.Second), WithGracePeriod(2*time.Second))
	assert.Equal(t, time.Second, mo.interval)
	assert.Equal(t, 2*time.Second, mo.grace)
}
