package app

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
)

// Option configures an App.
type Option func(*App)

// WithLogger overrides the logger built from APP_ENV and APP_NAME.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithDriver overrides the driver otherwise picked from the DATABASE_URL scheme.
func WithDriver(d dbconn.Driver) Option {
	if d == nil {
		panic("WithDriver: nil driver")
	}
	return func(a *App) { a.driver = d }
}

// WithRegistry sets the registry behind /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	if reg == nil {
		panic("WithRegistry: nil registry")
	}
	return func(a *App) { a.registry = reg }
}

// WithRoutes mounts application routes next to the health endpoints.
func WithRoutes(fn func(r chi.Router, deps Deps)) Option {
	if fn == nil {
		panic("WithRoutes: nil function")
	}
	return func(a *App) { a.routes = append(a.routes, fn) }
}

// WithReadyHook is called with the bound address once the listener accepts connections.
func WithReadyHook(fn func(addr string)) Option {
	if fn == nil {
		panic("WithReadyHook: nil hook")
	}
	return func(a *App) { a.ready = fn }
}

// WithExit replaces os.Exit for the forced exit after a stalled shutdown.
func WithExit(fn func(code int)) Option {
	if fn == nil {
		panic("WithExit: nil function")
	}
	return func(a *App) { a.exit = fn }
}

func defaultExit(code int) { os.Exit(code) }
