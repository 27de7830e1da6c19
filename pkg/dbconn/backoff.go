package dbconn

import "time"

const (
	// MaxAttempts is the number of consecutive connection attempts before Connect gives up.
	MaxAttempts = 7

	BackoffBase = 2 * time.Second
	BackoffCap  = 15 * time.Second
)

// DelayFor returns the wait before the attempt following attempt n:
// min(BackoffBase * 2^(n-1), BackoffCap). No jitter is applied.
func DelayFor(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	d := BackoffBase
	for i := 1; i < n; i++ {
		d *= 2
		if d >= BackoffCap {
			return BackoffCap
		}
	}
	return min(d, BackoffCap)
}
