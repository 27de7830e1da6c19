package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/bootkit/pkg/logger"
)

// Liveness is the body served by LivenessHandler.
type Liveness struct {
	Status     string    `json:"status"`
	Service    string    `json:"service"`
	InstanceID string    `json:"instance_id,omitempty"`
	Uptime     string    `json:"uptime"`
	Timestamp  time.Time `json:"timestamp"`
}

// LivenessHandler answers 200 as long as the process serves requests.
// It never touches dependencies.
func LivenessHandler(service, instanceID string, startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		render.JSON(w, r, Liveness{
			Status:     "ok",
			Service:    service,
			InstanceID: instanceID,
			Uptime:     now.Sub(startedAt).Round(time.Second).String(),
			Timestamp:  now.UTC(),
		})
	}
}

// ReportHandler serves the report produced by fn as JSON with 200 when healthy
// and 503 otherwise.
func ReportHandler[T any](fn func(context.Context) (T, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, healthy := fn(r.Context())
		if !healthy {
			render.Status(r, http.StatusServiceUnavailable)
		}
		render.JSON(w, r, report)
	}
}

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness is the body served by ReadinessHandler.
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ReadinessHandler runs every check concurrently on each request. It answers
// 200 when all pass and 503 otherwise; failures are logged at warning level.
func ReadinessHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		errs := make([]error, len(checks))
		var g errgroup.Group
		for i, c := range checks {
			g.Go(func() error {
				errs[i] = c.Fn(r.Context())
				return nil
			})
		}
		_ = g.Wait()

		body := Readiness{Status: "ready", Checks: make(map[string]string, len(checks))}
		for i, c := range checks {
			if errs[i] != nil {
				body.Status = "not_ready"
				body.Checks[c.Name] = errs[i].Error()
				log.WarnContext(r.Context(), "readiness check failed", slog.String("check", c.Name), logger.Error(errs[i]))
				continue
			}
			body.Checks[c.Name] = "ok"
		}
		if body.Status != "ready" {
			render.Status(r, http.StatusServiceUnavailable)
		}
		render.JSON(w, r, body)
	}
}
