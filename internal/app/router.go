package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
	"github.com/dmitrymomot/bootkit/pkg/email"
	"github.com/dmitrymomot/bootkit/pkg/httpserver"
	"github.com/dmitrymomot/bootkit/pkg/redis"
	"github.com/dmitrymomot/bootkit/pkg/requestid"
)

// Deps is what application routes receive from the bootstrap. Email and Redis
// are nil when the subsystem is disabled or failed.
type Deps struct {
	DB      *dbconn.Manager
	Handle  dbconn.Handle
	Email   email.EmailSender
	Redis   *goredis.Client
	Results []SubsystemResult
}

func (a *App) router(cfg Config, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.LivenessHandler(cfg.Name, a.instanceID, a.startedAt))
	r.Get("/api/health", httpserver.ReportHandler(func(ctx context.Context) (dbconn.HealthReport, bool) {
		ctx, cancel := context.WithTimeout(ctx, cfg.HealthTimeout)
		defer cancel()
		report := deps.DB.HealthCheck(ctx)
		return report, report.Healthy()
	}))
	r.Get("/ready", httpserver.ReadinessHandler(a.logger, a.readinessChecks(deps)...))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}))

	for _, fn := range a.routes {
		fn(r, deps)
	}
	return r
}

// readinessChecks probes the database and every optional dependency that
// came up.
func (a *App) readinessChecks(deps Deps) []httpserver.Check {
	checks := []httpserver.Check{{Name: "database", Fn: deps.DB.Healthcheck()}}
	if deps.Redis != nil {
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(deps.Redis)})
	}
	return checks
}
