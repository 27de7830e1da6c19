package app

import (
	"context"
	"sync"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
)

type fakeHandle struct {
	mu      sync.Mutex
	closed  int
	release chan struct{} // Close blocks until it is closed when set
}

func (h *fakeHandle) Ping(context.Context) error { return nil }

func (h *fakeHandle) Close(context.Context) error {
	if h.release != nil {
		<-h.release
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed++
	return nil
}

func (h *fakeHandle) closeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

type fakeDriver struct {
	mu          sync.Mutex
	describeErr error
	handle      *fakeHandle
	opens       int
	block       bool // Open waits for its context to end
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{handle: &fakeHandle{}}
}

func (d *fakeDriver) Describe(string) (dbconn.Target, error) {
	if d.describeErr != nil {
		return dbconn.Target{}, d.describeErr
	}
	return dbconn.Target{Hosts: []string{"127.0.0.1:27017"}, Database: "app"}, nil
}

func (d *fakeDriver) Open(ctx context.Context, _ string, _ dbconn.Options, _ func(dbconn.Event)) (dbconn.Handle, error) {
	d.mu.Lock()
	d.opens++
	block := d.block
	d.mu.Unlock()
	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return d.handle, nil
}

func (d *fakeDriver) openCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}
