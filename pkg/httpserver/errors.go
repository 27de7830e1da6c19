package httpserver

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrPortInUse is matched by *PortInUseError.
	ErrPortInUse = errors.New("port is already in use")
)

// PortInUseError reports a listen address held by another process.
type PortInUseError struct {
	Addr string
	Err  error
}

func (e *PortInUseError) Error() string {
	return fmt.Sprintf("%v: %s: stop the other process or set HTTP_ADDR to a free port", ErrPortInUse, e.Addr)
}

func (e *PortInUseError) Is(target error) bool { return target == ErrPortInUse }

func (e *PortInUseError) Unwrap() error { return e.Err }

func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
