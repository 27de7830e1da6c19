package pg

import (
	"context"
	"errors"
	"math"
	"net"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
)

// Supports reports whether uri is a PostgreSQL connection URL.
func Supports(uri string) bool {
	return strings.HasPrefix(uri, "postgres://") || strings.HasPrefix(uri, "postgresql://")
}

// Driver opens pgx connection pools for a dbconn.Manager.
//
// pgx exposes no server heartbeat stream, so the driver emits no events: loss
// of connectivity is detected by the manager's monitor through Ping.
type Driver struct{}

// NewDriver returns the PostgreSQL driver.
func NewDriver() *Driver { return &Driver{} }

// Describe parses uri without any network access.
func (d *Driver) Describe(uri string) (dbconn.Target, error) {
	if !Supports(uri) {
		return dbconn.Target{}, ErrUnsupportedScheme
	}
	cfg, err := pgconn.ParseConfig(uri)
	if err != nil {
		return dbconn.Target{}, errors.Join(ErrFailedToParseDBConfig, err)
	}

	hosts := []string{hostPort(cfg.Host, cfg.Port)}
	for _, fb := range cfg.Fallbacks {
		hp := hostPort(fb.Host, fb.Port)
		if hp != hosts[len(hosts)-1] {
			hosts = append(hosts, hp)
		}
	}
	return dbconn.Target{Hosts: hosts, Database: cfg.Database}, nil
}

// Open creates a pool and verifies it with a ping.
func (d *Driver) Open(ctx context.Context, uri string, opts dbconn.Options, _ func(dbconn.Event)) (dbconn.Handle, error) {
	if !Supports(uri) {
		return nil, ErrUnsupportedScheme
	}
	cfg, err := pgxpool.ParseConfig(uri)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}

	if opts.MaxPoolSize > 0 {
		cfg.MaxConns = clampInt32(opts.MaxPoolSize)
	}
	cfg.MinConns = min(clampInt32(opts.MinPoolSize), cfg.MaxConns)
	if opts.HeartbeatInterval > 0 {
		cfg.HealthCheckPeriod = opts.HeartbeatInterval
	}
	cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok && opts.AppName != "" {
		cfg.ConnConfig.RuntimeParams["application_name"] = opts.AppName
	}
	dialer := &net.Dialer{Timeout: opts.ConnectTimeout}
	network := opts.Network()
	cfg.ConnConfig.DialFunc = func(ctx context.Context, nw, addr string) (net.Conn, error) {
		if nw == "tcp" {
			nw = network
		}
		return dialer.DialContext(ctx, nw, addr)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	return &Pool{pool: pool}, nil
}

// Pool is the dbconn.Handle of a PostgreSQL connection pool.
type Pool struct {
	pool *pgxpool.Pool
}

func (p *Pool) Ping(ctx context.Context) error {
	return Healthcheck(p.pool)(ctx)
}

// Close closes the pool. pgxpool waits for acquired connections to be
// released, so Close gives up when ctx is done and lets the pool drain alone.
func (p *Pool) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.pool.Close()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pool returns the underlying pgx pool.
func (p *Pool) Pool() *pgxpool.Pool { return p.pool }

func hostPort(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}

func clampInt32(v uint64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
