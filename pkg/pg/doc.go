// Package pg is the PostgreSQL driver of package dbconn, built on pgx/v5.
//
// Driver.Open turns dbconn.Options into a pgxpool configuration (pool bounds,
// connect timeout, pool health check period, address family) and verifies the
// pool with a ping. pgx reports no server heartbeats, so connection loss is
// detected by the dbconn monitor.
//
// # Usage
//
//	mgr := dbconn.New(cfg, pg.NewDriver(), dbconn.WithLogger(log))
//	h, err := mgr.Connect(ctx)
//	if err != nil {
//		return err
//	}
//	pool := h.(*pg.Pool).Pool()
//
//	if migCfg.Enabled() {
//		if err := pg.Migrate(ctx, pool, migCfg, log); err != nil {
//			return err
//		}
//	}
//
// Migrate runs goose migrations from MigrationConfig.MigrationsPath through the
// same pool.
package pg
