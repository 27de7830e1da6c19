package app

import "errors"

var (
	ErrFilesystem            = errors.New("app: failed to prepare filesystem")
	ErrEnvironment           = errors.New("app: environment validation failed")
	ErrConfig                = errors.New("app: failed to load configuration")
	ErrDatabase              = errors.New("app: database connection failed")
	ErrMonitor               = errors.New("app: failed to start connection monitor")
	ErrListener              = errors.New("app: HTTP listener failed")
	ErrMigrationsNotPostgres = errors.New("app: migrations are configured but the database is not PostgreSQL")
)
