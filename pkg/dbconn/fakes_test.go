package dbconn

import (
	"context"
	"errors"
	"net"
	"os"
	"sync"
	"syscall"
	"time"
)

var errRefused = &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

type fakeHandle struct {
	mu       sync.Mutex
	pingErr  error
	closeErr error
	closed   int
}

func (h *fakeHandle) Ping(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pingErr
}

func (h *fakeHandle) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed++
	return h.closeErr
}

func (h *fakeHandle) setPingErr(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pingErr = err
}

func (h *fakeHandle) closeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

type fakeDriver struct {
	mu          sync.Mutex
	target      Target
	describeErr error
	failures    int // the first n opens fail with openErr
	openErr     error
	opens       int
	block       bool // Open waits for its context instead of failing at once
	waited      []time.Duration
	notifiers   []func(Event)
	handles     []*fakeHandle
}

func newFakeDriver(hosts ...string) *fakeDriver {
	if len(hosts) == 0 {
		hosts = []string{"db.internal:27017"}
	}
	return &fakeDriver{target: Target{Hosts: hosts, Database: "app"}, openErr: errRefused}
}

func (d *fakeDriver) Describe(uri string) (Target, error) {
	if d.describeErr != nil {
		return Target{}, d.describeErr
	}
	return d.target, nil
}

func (d *fakeDriver) Open(ctx context.Context, uri string, opts Options, notify func(Event)) (Handle, error) {
	d.mu.Lock()
	d.opens++
	d.notifiers = append(d.notifiers, notify)
	if d.block {
		d.mu.Unlock()
		start := time.Now()
		<-ctx.Done()
		d.mu.Lock()
		d.waited = append(d.waited, time.Since(start))
		d.mu.Unlock()
		return nil, ctx.Err()
	}
	defer d.mu.Unlock()
	if d.opens <= d.failures {
		return nil, d.openErr
	}
	h := &fakeHandle{}
	d.handles = append(d.handles, h)
	return h, nil
}

func (d *fakeDriver) openCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}

func (d *fakeDriver) waits() []time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]time.Duration(nil), d.waited...)
}

func (d *fakeDriver) lastNotifier() func(Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.notifiers[len(d.notifiers)-1]
}

func (d *fakeDriver) handle(i int) *fakeHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handles[i]
}

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeConn stands in for the Manager when testing the monitor alone.
type fakeConn struct {
	mu           sync.Mutex
	state        State
	pingErr      error
	reconnectErr error
	pings        int
	reconnects   int
	active       int
	maxActive    int
	release      chan struct{}
}

func (c *fakeConn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *fakeConn) Ping(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pings++
	return c.pingErr
}

func (c *fakeConn) Reconnect(ctx context.Context) error {
	c.mu.Lock()
	c.reconnects++
	c.active++
	c.maxActive = max(c.maxActive, c.active)
	release := c.release
	c.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.active--
	if c.reconnectErr != nil {
		return c.reconnectErr
	}
	c.state = Connected
	return nil
}

func (c *fakeConn) set(f func(c *fakeConn)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(c)
}

func (c *fakeConn) counts() (pings, reconnects, maxActive int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pings, c.reconnects, c.maxActive
}

var errPing = errors.New("ping: i/o timeout")
