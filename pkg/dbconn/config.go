package dbconn

import "time"

// Config represents the connection manager configuration.
// URI is intentionally not tagged as required: a missing value must surface
// as a ConfigError from Connect instead of a generic parse failure.
type Config struct {
	URI                    string        `env:"DATABASE_URL"`                                                    // URI is the connection string of the database.
	ServerSelectionTimeout time.Duration `env:"DB_SERVER_SELECTION_TIMEOUT" envDefault:"10s" validate:"gt=0"`    // ServerSelectionTimeout bounds the wait for a usable server.
	ConnectTimeout         time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s" validate:"gt=0"`             // ConnectTimeout bounds a single TCP/TLS handshake.
	SocketTimeout          time.Duration `env:"DB_SOCKET_TIMEOUT" envDefault:"45s" validate:"gte=0"`             // SocketTimeout bounds individual operations on an open connection.
	HeartbeatInterval      time.Duration `env:"DB_HEARTBEAT_INTERVAL" envDefault:"10s" validate:"gt=0"`          // HeartbeatInterval is how often the driver checks server health.
	MaxPoolSize            uint64        `env:"DB_MAX_POOL_SIZE" envDefault:"10" validate:"gt=0"`                // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize            uint64        `env:"DB_MIN_POOL_SIZE" envDefault:"2" validate:"ltefield=MaxPoolSize"` // MinPoolSize is the minimum number of pooled connections.
	RetryWrites            bool          `env:"DB_RETRY_WRITES" envDefault:"true"`                               // RetryWrites lets the driver retry failed writes once.
	RetryReads             bool          `env:"DB_RETRY_READS" envDefault:"true"`                                // RetryReads lets the driver retry failed reads once.
	AddressFamily          int           `env:"DB_ADDRESS_FAMILY" envDefault:"4" validate:"oneof=0 4 6"`         // AddressFamily forces IPv4 (4) or IPv6 (6) dialing, 0 lets the OS decide.
	AttemptTimeout         time.Duration `env:"DB_ATTEMPT_TIMEOUT" envDefault:"15s" validate:"gt=0"`             // AttemptTimeout bounds one connection attempt.
	ProbeTimeout           time.Duration `env:"DB_PROBE_TIMEOUT" envDefault:"5s" validate:"gt=0"`                // ProbeTimeout bounds a liveness ping.
	WarmupLocal            time.Duration `env:"DB_WARMUP_LOCAL" envDefault:"2s"`                                 // WarmupLocal is the delay before the first attempt against a loopback host. Negative disables it.
	WarmupRemote           time.Duration `env:"DB_WARMUP_REMOTE" envDefault:"3s"`                                // WarmupRemote is the delay before the first attempt against a remote host. Negative disables it.
	MonitorInterval        time.Duration `env:"DB_MONITOR_INTERVAL" envDefault:"15s" validate:"gt=0"`            // MonitorInterval is the period of the connection monitor.
	GracePeriod            time.Duration `env:"DB_MONITOR_GRACE_PERIOD" envDefault:"10s"`                        // GracePeriod is how long a disconnect is left to the driver before forcing a reconnect. Negative disables it.
	AppName                string        `env:"DB_APP_NAME" envDefault:"bootkit"`                                // AppName is reported to the server when the driver supports it.
}

// Options is the immutable driver configuration derived from Config.
type Options struct {
	ServerSelectionTimeout time.Duration
	ConnectTimeout         time.Duration
	SocketTimeout          time.Duration
	HeartbeatInterval      time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	RetryWrites            bool
	RetryReads             bool
	AddressFamily          int
	AppName                string
}

// Options returns the driver options of the config.
func (c Config) Options() Options {
	return Options{
		ServerSelectionTimeout: c.ServerSelectionTimeout,
		ConnectTimeout:         c.ConnectTimeout,
		SocketTimeout:          c.SocketTimeout,
		HeartbeatInterval:      c.HeartbeatInterval,
		MaxPoolSize:            c.MaxPoolSize,
		MinPoolSize:            c.MinPoolSize,
		RetryWrites:            c.RetryWrites,
		RetryReads:             c.RetryReads,
		AddressFamily:          c.AddressFamily,
		AppName:                c.AppName,
	}
}

// Network returns the dial network honouring AddressFamily.
func (o Options) Network() string {
	switch o.AddressFamily {
	case 4:
		return "tcp4"
	case 6:
		return "tcp6"
	default:
		return "tcp"
	}
}

// Defaults applied by New to zero fields of a hand-built Config.
const (
	DefaultWarmupLocal  = 2 * time.Second
	DefaultWarmupRemote = 3 * time.Second
	DefaultGracePeriod  = 10 * time.Second
	DefaultMaxPoolSize  = 10
)

// withDefaults fills zero fields so a hand-built Config behaves like a loaded
// one. Negative warm-ups and grace period mean none.
func (c Config) withDefaults() Config {
	c.WarmupLocal = orDefault(c.WarmupLocal, DefaultWarmupLocal)
	c.WarmupRemote = orDefault(c.WarmupRemote, DefaultWarmupRemote)
	c.GracePeriod = orDefault(c.GracePeriod, DefaultGracePeriod)
	if c.MaxPoolSize == 0 {
		c.MaxPoolSize = DefaultMaxPoolSize
	}
	if c.MinPoolSize > c.MaxPoolSize {
		c.MinPoolSize = c.MaxPoolSize
	}
	if c.ServerSelectionTimeout <= 0 {
		c.ServerSelectionTimeout = 10 * time.Second
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = 10 * time.Second
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = 15 * time.Second
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = 5 * time.Second
	}
	if c.MonitorInterval <= 0 {
		c.MonitorInterval = 15 * time.Second
	}
	return c
}

func orDefault(d, def time.Duration) time.Duration {
	switch {
	case d == 0:
		return def
	case d < 0:
		return 0
	}
	return d
}
