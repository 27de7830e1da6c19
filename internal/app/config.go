package app

import (
	"time"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
	"github.com/dmitrymomot/bootkit/pkg/email"
	"github.com/dmitrymomot/bootkit/pkg/httpserver"
	"github.com/dmitrymomot/bootkit/pkg/pg"
	"github.com/dmitrymomot/bootkit/pkg/redis"
)

// bootConfig is read before anything else so the filesystem can be prepared
// and the logger built. It has no required variables.
type bootConfig struct {
	Name     string `env:"APP_NAME" envDefault:"bootkit"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	DataDir  string `env:"DATA_DIR" envDefault:"./data"`
	EmailDir string `env:"EMAIL_DEV_DIR"`
}

// Config is the full application configuration, loaded once the environment
// has been validated.
type Config struct {
	Name            string        `env:"APP_NAME" envDefault:"bootkit" validate:"required"`    // Name is the service name reported in logs and /health.
	Env             string        `env:"APP_ENV" envDefault:"development"`                     // Env selects the logging profile.
	DataDir         string        `env:"DATA_DIR" envDefault:"./data" validate:"required"`     // DataDir is created at startup.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`    // ShutdownTimeout bounds graceful shutdown before a forced exit.
	HealthTimeout   time.Duration `env:"HEALTH_CHECK_TIMEOUT" envDefault:"3s" validate:"gt=0"` // HealthTimeout bounds the /api/health probe.
	SubsystemsWait  time.Duration `env:"SUBSYSTEMS_TIMEOUT" envDefault:"30s" validate:"gt=0"`  // SubsystemsWait bounds the optional subsystem phase.

	HTTP       httpserver.Config
	DB         dbconn.Config
	Redis      redis.Config
	Email      email.Config
	Migrations pg.MigrationConfig
}
