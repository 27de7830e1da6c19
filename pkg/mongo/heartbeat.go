package mongo

import (
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/event"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
)

// heartbeatTracker folds per-server heartbeats into connection-level events:
// EventDown once every known server fails, EventUp when any server answers again.
type heartbeatTracker struct {
	notify func(dbconn.Event)

	mu      sync.Mutex
	failing map[string]bool
	down    bool
}

func newHeartbeatTracker(notify func(dbconn.Event)) *heartbeatTracker {
	if notify == nil {
		notify = func(dbconn.Event) {}
	}
	return &heartbeatTracker{notify: notify, failing: make(map[string]bool)}
}

func (t *heartbeatTracker) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(e *event.ServerHeartbeatSucceededEvent) {
			t.succeeded(e.ConnectionID)
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			t.failed(e.ConnectionID, e.Failure)
		},
	}
}

func (t *heartbeatTracker) succeeded(connID string) {
	t.mu.Lock()
	t.failing[serverOf(connID)] = false
	recovered := t.down
	t.down = false
	t.mu.Unlock()

	if recovered {
		t.notify(dbconn.Event{Kind: dbconn.EventUp})
	}
}

func (t *heartbeatTracker) failed(connID string, err error) {
	t.mu.Lock()
	t.failing[serverOf(connID)] = true
	lost := false
	if !t.down {
		lost = true
		for _, f := range t.failing {
			if !f {
				lost = false
				break
			}
		}
		t.down = lost
	}
	t.mu.Unlock()

	if lost {
		t.notify(dbconn.Event{Kind: dbconn.EventDown, Err: err})
	}
}

// serverOf strips the connection counter from ids like "db:27017[-3]".
func serverOf(connID string) string {
	if i := strings.LastIndex(connID, "[-"); i > 0 {
		return connID[:i]
	}
	return connID
}
