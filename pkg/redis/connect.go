package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect establishes a connection to a Redis server using the provided configuration.
// It attempts to connect RetryAttempts times, pausing RetryInterval between attempts,
// all within ConnectTimeout.
//
// Returns ErrEmptyConnectionURL when no URL is configured,
// ErrFailedToParseRedisConnString if the URL is invalid and
// ErrRedisNotReady if all connection attempts fail.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	redisConnOpt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	var lastErr error
	for range max(cfg.RetryAttempts, 1) {
		redisClient := redis.NewClient(redisConnOpt)

		lastErr = ping(ctx, redisClient)
		if lastErr == nil {
			return redisClient, nil
		}

		_ = redisClient.Close()

		t := time.NewTimer(cfg.RetryInterval)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, errors.Join(ErrRedisNotReady, ctx.Err(), lastErr)
		case <-t.C:
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// Initialize connects the optional cache. It reports enabled=false with a nil
// error when Redis is not configured.
func Initialize(ctx context.Context, cfg Config) (client *redis.Client, enabled bool, err error) {
	if !cfg.Enabled() {
		return nil, false, nil
	}
	client, err = Connect(ctx, cfg)
	if err != nil {
		return nil, true, err
	}
	return client, true, nil
}
