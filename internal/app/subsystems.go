package app

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
	"github.com/dmitrymomot/bootkit/pkg/email"
	"github.com/dmitrymomot/bootkit/pkg/logger"
	"github.com/dmitrymomot/bootkit/pkg/pg"
	"github.com/dmitrymomot/bootkit/pkg/redis"
)

// SubsystemResult is the outcome of one optional subsystem. It is inspected
// and logged by the bootstrap but never fails it.
type SubsystemResult struct {
	Name    string
	Enabled bool
	Err     error
	Elapsed time.Duration
}

// Status returns "disabled", "failed" or "ready".
func (r SubsystemResult) Status() string {
	switch {
	case !r.Enabled:
		return "disabled"
	case r.Err != nil:
		return "failed"
	default:
		return "ready"
	}
}

// subsystems holds what the optional initializers produced.
type subsystems struct {
	email   email.EmailSender
	redis   *goredis.Client
	results []SubsystemResult
}

const (
	subsystemEmail      = "email"
	subsystemRedis      = "redis"
	subsystemMigrations = "migrations"
)

// startSubsystems runs the optional initializers concurrently and waits for
// all of them. Failures are recorded in the results only.
func startSubsystems(ctx context.Context, cfg Config, handle dbconn.Handle, log *slog.Logger) *subsystems {
	ctx, cancel := context.WithTimeout(ctx, cfg.SubsystemsWait)
	defer cancel()

	s := &subsystems{results: make([]SubsystemResult, 3)}
	run := func(i int, name string, fn func() (bool, error)) func() error {
		return func() error {
			start := time.Now()
			enabled, err := fn()
			s.results[i] = SubsystemResult{Name: name, Enabled: enabled, Err: err, Elapsed: time.Since(start)}
			return nil
		}
	}

	var g errgroup.Group
	g.Go(run(0, subsystemEmail, func() (bool, error) {
		sender, enabled, err := email.Initialize(cfg.Email)
		s.email = sender
		return enabled, err
	}))
	g.Go(run(1, subsystemRedis, func() (bool, error) {
		client, enabled, err := redis.Initialize(ctx, cfg.Redis)
		s.redis = client
		return enabled, err
	}))
	g.Go(run(2, subsystemMigrations, func() (bool, error) {
		if !cfg.Migrations.Enabled() {
			return false, nil
		}
		pool, ok := handle.(*pg.Pool)
		if !ok {
			return true, ErrMigrationsNotPostgres
		}
		return true, pg.Migrate(ctx, pool.Pool(), cfg.Migrations, log.With(logger.Subsystem(subsystemMigrations)))
	}))
	_ = g.Wait()

	for _, r := range s.results {
		attrs := []any{logger.Subsystem(r.Name), slog.String("status", r.Status()), logger.Duration(r.Elapsed)}
		if r.Err != nil {
			log.WarnContext(ctx, "optional subsystem unavailable, continuing without it", append(attrs, logger.Error(r.Err))...)
			continue
		}
		log.InfoContext(ctx, "optional subsystem initialized", attrs...)
	}
	return s
}

func (s *subsystems) close(ctx context.Context, log *slog.Logger) {
	if s == nil || s.redis == nil {
		return
	}
	if err := s.redis.Close(); err != nil {
		log.WarnContext(ctx, "error while closing redis client", logger.Error(err))
	}
}
