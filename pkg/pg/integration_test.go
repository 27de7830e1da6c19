//go:build integration

package pg_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
	"github.com/dmitrymomot/bootkit/pkg/pg"
)

func setupPostgresContainer(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
}

func TestManagerWithPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	uri := setupPostgresContainer(ctx, t)

	mgr := dbconn.New(dbconn.Config{URI: uri, MaxPoolSize: 4, MinPoolSize: 1}, pg.NewDriver())
	h, err := mgr.Connect(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Disconnect(context.Background()) })

	report := mgr.HealthCheck(ctx)
	assert.True(t, report.Healthy())
	assert.Equal(t, "testdb", report.Database)

	pool := h.(*pg.Pool).Pool()
	err = pg.Migrate(ctx, pool, pg.MigrationConfig{
		MigrationsPath:  "testdata/migrations",
		MigrationsTable: "schema_migrations",
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	_, err = pool.Exec(ctx, "INSERT INTO items (name) VALUES ($1)", "first")
	require.NoError(t, err)
	var n int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM items").Scan(&n))
	assert.Equal(t, 1, n)
}
