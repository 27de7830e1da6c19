package dbconn

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// Category is the diagnostic bucket of a connection failure.
type Category string

const (
	ConnectionRefused     Category = "connection_refused"
	NameResolutionFailure Category = "name_resolution_failure"
	MalformedAddress      Category = "malformed_address"
	NetworkUnreachable    Category = "network_unreachable"
	Unknown               Category = "unknown"
)

func (c Category) String() string { return string(c) }

// Hint returns the likely cause and the remediation step for the category.
func (c Category) Hint() string {
	switch c {
	case ConnectionRefused:
		return "database server is not accepting connections: start it or check the port in DATABASE_URL"
	case NameResolutionFailure:
		return "database host name could not be resolved: check the host in DATABASE_URL and DNS"
	case MalformedAddress:
		return "database address is invalid: fix the format of DATABASE_URL"
	case NetworkUnreachable:
		return "network route to the database is down: check connectivity, VPN or firewall rules"
	default:
		return "unexpected connection failure: inspect the error and database server logs"
	}
}

type classifyRule struct {
	category Category
	match    func(err error) bool
}

// rules are evaluated in order; first match wins.
var rules = []classifyRule{
	{ConnectionRefused, func(err error) bool { return errors.Is(err, syscall.ECONNREFUSED) }},
	{NameResolutionFailure, func(err error) bool {
		var dnsErr *net.DNSError
		return errors.As(err, &dnsErr)
	}},
	{NetworkUnreachable, func(err error) bool {
		return errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH)
	}},
	{MalformedAddress, func(err error) bool {
		var addrErr *net.AddrError
		var urlErr *url.Error
		var parseErr *net.ParseError
		if errors.As(err, &urlErr) && urlErr.Op == "parse" {
			return true
		}
		return errors.As(err, &addrErr) || errors.As(err, &parseErr)
	}},
	{ConnectionRefused, containsAny("connection refused", "econnrefused")},
	{NameResolutionFailure, containsAny("no such host", "enotfound", "server misbehaving", "lookup ")},
	{NetworkUnreachable, containsAny("network is unreachable", "no route to host", "enetunreach")},
	{MalformedAddress, containsAny("error parsing uri", "cannot parse", "invalid port", "missing port", "scheme must be")},
}

func containsAny(codes ...string) func(error) bool {
	return func(err error) bool {
		msg := strings.ToLower(err.Error())
		for _, code := range codes {
			if strings.Contains(msg, code) {
				return true
			}
		}
		return false
	}
}

// Classify maps a connection error to its diagnostic category.
// It never panics and returns Unknown for nil or unrecognised errors.
func Classify(err error) Category {
	if err == nil {
		return Unknown
	}
	for _, r := range rules {
		if r.match(err) {
			return r.category
		}
	}
	return Unknown
}
