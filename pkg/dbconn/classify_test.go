package dbconn_test

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bootkit/pkg/dbconn"
)

func dialErr(errno syscall.Errno) error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", errno)}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want dbconn.Category
	}{
		{"nil", nil, dbconn.Unknown},
		{"refused errno", dialErr(syscall.ECONNREFUSED), dbconn.ConnectionRefused},
		{"refused wrapped", fmt.Errorf("server selection: %w", dialErr(syscall.ECONNREFUSED)), dbconn.ConnectionRefused},
		{"refused text", errors.New("dial tcp 127.0.0.1:27017: connect: connection refused"), dbconn.ConnectionRefused},
		{"dns error", &net.DNSError{Err: "no such host", Name: "db.invalid", IsNotFound: true}, dbconn.NameResolutionFailure},
		{"dns text", errors.New("lookup db.invalid on 127.0.0.53:53: no such host"), dbconn.NameResolutionFailure},
		{"network unreachable", dialErr(syscall.ENETUNREACH), dbconn.NetworkUnreachable},
		{"host unreachable", dialErr(syscall.EHOSTUNREACH), dbconn.NetworkUnreachable},
		{"unreachable text", errors.New("connect: no route to host"), dbconn.NetworkUnreachable},
		{"url parse", &url.Error{Op: "parse", URL: "::", Err: errors.New("missing protocol scheme")}, dbconn.MalformedAddress},
		{"addr error", &net.AddrError{Err: "missing port in address", Addr: "db"}, dbconn.MalformedAddress},
		{"uri text", errors.New("error parsing uri: scheme must be \"mongodb\" or \"mongodb+srv\""), dbconn.MalformedAddress},
		{"url error of a dial", &url.Error{Op: "Get", URL: "http://db", Err: errors.New("timeout")}, dbconn.Unknown},
		{"auth failure", errors.New("auth error: sasl conversation error"), dbconn.Unknown},
		{"deadline", errors.New("context deadline exceeded"), dbconn.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dbconn.Classify(tt.err))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	t.Parallel()
	// A refused dial whose message also mentions a lookup stays refused.
	err := fmt.Errorf("lookup ok, then: %w", dialErr(syscall.ECONNREFUSED))
	assert.Equal(t, dbconn.ConnectionRefused, dbconn.Classify(err))
}

func TestCategory_Hint(t *testing.T) {
	t.Parallel()
	for _, c := range []dbconn.Category{
		dbconn.ConnectionRefused,
		dbconn.NameResolutionFailure,
		dbconn.MalformedAddress,
		dbconn.NetworkUnreachable,
		dbconn.Unknown,
	} {
		assert.NotEmpty(t, c.Hint(), c)
	}
}
