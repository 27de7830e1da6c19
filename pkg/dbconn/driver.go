package dbconn

import (
	"context"
	"net"
	"strings"
)

// Driver opens connection handles for one database product.
type Driver interface {
	// Describe parses uri without touching the network.
	Describe(uri string) (Target, error)
	// Open establishes and verifies a handle within ctx. Lifecycle events of the
	// returned handle are delivered to notify, which must not block.
	Open(ctx context.Context, uri string, opts Options, notify func(Event)) (Handle, error)
}

// Handle is a live connection. Pooling is the driver's business.
type Handle interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// EventKind is a driver-level lifecycle notification.
type EventKind int

const (
	// EventUp means the driver can reach the server again.
	EventUp EventKind = iota + 1
	// EventDown means the driver lost every server.
	EventDown
)

func (k EventKind) String() string {
	switch k {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	default:
		return "unknown"
	}
}

// Event is delivered by drivers through the notify function given to Open.
type Event struct {
	Kind EventKind
	Err  error
}

// Target describes where a connection string points.
type Target struct {
	Hosts    []string `json:"hosts"`
	Database string   `json:"database"`
}

// Host returns the hosts joined the way they appear in a connection string.
func (t Target) Host() string { return strings.Join(t.Hosts, ",") }

// IsLocal reports whether every host is a loopback address or a unix socket.
func (t Target) IsLocal() bool {
	if len(t.Hosts) == 0 {
		return false
	}
	for _, h := range t.Hosts {
		if !isLoopback(h) {
			return false
		}
	}
	return true
}

func isLoopback(hostport string) bool {
	if strings.HasPrefix(hostport, "/") || strings.HasSuffix(hostport, ".sock") {
		return true
	}
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
