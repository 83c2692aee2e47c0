// Package netx classifies network failures and tracks whether the backend is
// reachable.
package netx

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// IsTimeout reports whether err is a deadline or an I/O timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsOffline reports whether err means the host has no usable network:
// name resolution could not be attempted or the network is unreachable.
// A resolver answer of "no such host" is not offline.
func IsOffline(err error) bool {
	if err == nil {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return !dnsErr.IsNotFound
	}
	return errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH)
}
