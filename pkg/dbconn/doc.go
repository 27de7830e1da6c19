// Package dbconn supervises the single database connection of a process.
//
// A Manager connects through a Driver (see packages mongo and pg) with a
// bounded number of attempts and deterministic exponential backoff, classifies
// failures into actionable categories, reports health, and owns a Monitor that
// forces a reconnect when the connection stays down past a grace period.
//
// # Lifecycle
//
//	Disconnected -> Connecting -> Connected
//	Connected -> Disconnected            (driver lost every server)
//	Disconnected -> Connected            (driver recovered on its own)
//	any -> Disconnecting -> Disconnected (Disconnect or stale handle cleanup)
//
// Every accepted transition is logged.
//
// # Usage
//
//	mgr := dbconn.New(cfg, mongo.NewDriver(), dbconn.WithLogger(log))
//	if _, err := mgr.Connect(ctx); err != nil {
//		// *dbconn.ConfigError or *dbconn.StartupError: both are fatal.
//		log.Error("database unavailable", logger.Error(err))
//		os.Exit(1)
//	}
//	mon, _ := mgr.StartMonitor(ctx)
//	defer mgr.Disconnect(context.Background()) // stops mon first
//
// # Errors
//
// Connect returns *ConfigError (matches ErrConfig) for a missing or malformed
// connection string without any network attempt, and *StartupError (matches
// ErrFatalStartup) after MaxAttempts failures. There is no degraded mode: an
// unreachable database is always fatal at startup.
package dbconn
