package httpserver

import (
	"errors"
	"net"
)

// CheckPortAvailable binds addr and releases it at once. It returns a
// *PortInUseError when another process holds the address.
func CheckPortAvailable(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if isAddrInUse(err) {
			return &PortInUseError{Addr: addr, Err: err}
		}
		return errors.Join(ErrStart, err)
	}
	return ln.Close()
}
