package pg

// MigrationConfig controls the optional schema migration step run after the
// database connection is established.
type MigrationConfig struct {
	MigrationsPath  string `env:"PG_MIGRATIONS_PATH"`                                 // MigrationsPath is the goose migrations directory; empty disables migrations.
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"` // MigrationsTable is the name of the table used to store the migration version.
}

// Enabled reports whether a migrations directory is configured.
func (c MigrationConfig) Enabled() bool { return c.MigrationsPath != "" }
