// Package redis connects the optional Redis cache of a bootkit service.
//
// Redis is never required for startup: Initialize reports enabled=false when
// REDIS_URL is empty, and a failed connection is reported to the caller, which
// logs it and continues without the cache.
//
// # Usage
//
//	var cfg redis.Config
//	_ = env.Parse(&cfg)
//
//	client, enabled, err := redis.Initialize(ctx, cfg)
//	switch {
//	case !enabled:
//		// cache disabled
//	case err != nil:
//		log.Warn("redis unavailable", logger.Error(err))
//	default:
//		defer client.Close()
//	}
//
// Healthcheck returns a probe closure for readiness endpoints.
package redis
