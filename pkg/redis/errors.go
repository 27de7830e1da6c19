package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned by Connect when REDIS_URL is not set.
	ErrEmptyConnectionURL = errors.New("redis: connection URL is empty")
	// ErrFailedToParseRedisConnString wraps redis.ParseURL failures.
	ErrFailedToParseRedisConnString = errors.New("redis: invalid connection URL")
	// ErrRedisNotReady is returned when every connection attempt failed.
	ErrRedisNotReady = errors.New("redis: server not ready after all attempts")
	// ErrHealthcheckFailed wraps failed pings.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
