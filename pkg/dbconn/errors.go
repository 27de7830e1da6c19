package dbconn

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks configuration problems. They are fatal and never retried.
	ErrConfig = errors.New("dbconn: configuration error")

	ErrMissingConnectionString   = errors.New("dbconn: connection string is not set")
	ErrMalformedConnectionString = errors.New("dbconn: connection string is malformed")

	// ErrFatalStartup is matched by *StartupError once every attempt has failed.
	ErrFatalStartup = errors.New("dbconn: database unreachable after all connection attempts")

	ErrNotConnected   = errors.New("dbconn: not connected")
	ErrMonitorRunning = errors.New("dbconn: connection monitor already running")
	ErrProbeFailed    = errors.New("dbconn: liveness probe failed")
	ErrNoTransition   = errors.New("dbconn: state transition not allowed")
)

// ConfigError describes a connection configuration problem with a remediation hint.
type ConfigError struct {
	Var         string
	Remediation string
	Err         error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (%s): %s", e.Err, e.Var, e.Remediation)
}

func (e *ConfigError) Unwrap() []error { return []error{ErrConfig, e.Err} }

// StartupError is returned by Connect after MaxAttempts consecutive failures.
// Callers are expected to terminate the process.
type StartupError struct {
	Op          string
	Attempts    int
	Category    Category
	Target      string
	Cause       string
	Remediation string
	Err         error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s: %d attempts to %s failed (%s): %v", e.Op, e.Attempts, e.Target, e.Category, e.Err)
}

func (e *StartupError) Is(target error) bool { return target == ErrFatalStartup }

func (e *StartupError) Unwrap() error { return e.Err }
