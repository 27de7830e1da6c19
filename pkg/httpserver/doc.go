// Package httpserver wraps net/http with graceful shutdown, start and stop
// hooks, a port pre-flight check and JSON health handlers.
//
// Run binds the listener itself so a busy port surfaces as ErrPortInUse
// before any request is served. By default Run also stops on SIGINT or
// SIGTERM; WithoutSignals leaves that to a caller that sequences shutdown
// across several components.
//
// # Usage
//
//	if err := httpserver.CheckPortAvailable(cfg.Addr); err != nil {
//		return err
//	}
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.LivenessHandler("orders", id, time.Now()))
//	r.Get("/api/health", httpserver.ReportHandler(func(ctx context.Context) (dbconn.HealthReport, bool) {
//		rep := mgr.HealthCheck(ctx)
//		return rep, rep.Healthy()
//	}))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log), httpserver.WithoutSignals())
//	err := srv.Run(ctx, r)
//
// Errors from Run match ErrStart; errors from Shutdown match ErrShutdown.
package httpserver
