// Package logger builds *slog.Logger instances for the service.
//
// New takes functional options. The stage presets WithDevelopment, WithStaging
// and WithProduction (or WithEnvironment with an APP_ENV value) pick the level
// and format: colored text through github.com/lmittmann/tint while developing,
// JSON everywhere else. Static attributes are added with WithAttr and
// request scoped ones through ContextExtractor callbacks, which a
// ContextHandler evaluates on every record logged with a context.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "orders"),
//		logger.WithAttr(logger.InstanceID(id)),
//		logger.WithContextExtractors(requestid.Extractor),
//	)
//	log.WarnContext(ctx, "database reconnect failed",
//		logger.Attempt(3, 7),
//		logger.Category("connection_refused"),
//		logger.Error(err),
//	)
//
// The attribute helpers keep key names consistent across packages. Error and
// Errors return an empty attribute for nil errors so callers can log without
// a nil check.
package logger
