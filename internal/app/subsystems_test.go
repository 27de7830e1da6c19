package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bootkit/pkg/email"
	"github.com/dmitrymomot/bootkit/pkg/pg"
	"github.com/dmitrymomot/bootkit/pkg/redis"
)

func TestStartSubsystems(t *testing.T) {
	t.Parallel()

	discard := slog.New(slog.DiscardHandler)

	t.Run("all disabled", func(t *testing.T) {
		t.Parallel()
		s := startSubsystems(context.Background(), Config{SubsystemsWait: time.Second}, &fakeHandle{}, discard)

		require.Len(t, s.results, 3)
		for _, r := range s.results {
			assert.False(t, r.Enabled, r.Name)
			assert.NoError(t, r.Err, r.Name)
			assert.Equal(t, "disabled", r.Status())
		}
		assert.Nil(t, s.email)
		assert.Nil(t, s.redis)
	})

	t.Run("enabled subsystems and non-fatal failure", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		cfg := Config{
			SubsystemsWait: 5 * time.Second,
			Email:          email.Config{DevDir: t.TempDir()},
			Redis: redis.Config{
				ConnectionURL:  "redis://" + mr.Addr(),
				RetryAttempts:  1,
				RetryInterval:  10 * time.Millisecond,
				ConnectTimeout: time.Second,
			},
			Migrations: pg.MigrationConfig{MigrationsPath: "migrations", MigrationsTable: "schema_migrations"},
		}

		s := startSubsystems(context.Background(), cfg, &fakeHandle{}, discard)
		defer s.close(context.Background(), discard)

		byName := map[string]SubsystemResult{}
		for _, r := range s.results {
			byName[r.Name] = r
		}
		assert.Equal(t, "ready", byName[subsystemEmail].Status())
		assert.Equal(t, "ready", byName[subsystemRedis].Status())
		assert.Equal(t, "failed", byName[subsystemMigrations].Status())
		assert.ErrorIs(t, byName[subsystemMigrations].Err, ErrMigrationsNotPostgres)

		assert.IsType(t, &email.DevSender{}, s.email)
		require.NotNil(t, s.redis)
		assert.NoError(t, s.redis.Ping(context.Background()).Err())
	})

	t.Run("unreachable redis is reported, not fatal", func(t *testing.T) {
		t.Parallel()
		cfg := Config{
			SubsystemsWait: time.Second,
			Redis: redis.Config{
				ConnectionURL:  "redis://127.0.0.1:1",
				RetryAttempts:  1,
				RetryInterval:  10 * time.Millisecond,
				ConnectTimeout: 200 * time.Millisecond,
			},
		}

		s := startSubsystems(context.Background(), cfg, &fakeHandle{}, discard)
		r := s.results[1]
		assert.Equal(t, subsystemRedis, r.Name)
		assert.Equal(t, "failed", r.Status())
		assert.ErrorIs(t, r.Err, redis.ErrRedisNotReady)
		assert.Nil(t, s.redis)
	})
}

func TestSubsystemResult_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result SubsystemResult
		want   string
	}{
		{"disabled", SubsystemResult{}, "disabled"},
		{"disabled ignores error", SubsystemResult{Err: errors.New("x")}, "disabled"},
		{"failed", SubsystemResult{Enabled: true, Err: errors.New("x")}, "failed"},
		{"ready", SubsystemResult{Enabled: true}, "ready"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.result.Status())
		})
	}
}
