package pg

import "errors"

var (
	ErrUnsupportedScheme        = errors.New("pg: connection string scheme must be postgres:// or postgresql://")
	ErrFailedToParseDBConfig    = errors.New("pg: invalid connection string")
	ErrFailedToOpenDBConnection = errors.New("pg: failed to open connection pool")
	ErrHealthcheckFailed        = errors.New("pg: healthcheck failed")

	ErrMigrationPathNotProvided = errors.New("pg: migrations path not provided")
	ErrMigrationsDirNotFound    = errors.New("pg: migrations directory not found")
	ErrFailedToApplyMigrations  = errors.New("pg: failed to apply migrations")
)
