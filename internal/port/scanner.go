// Package port — scanner.go checks whether a bind address is currently
// free on the host.
package port

import (
	"net"
	"strings"
)

// Scanner checks whether a bind address is available on the host machine.
//
// It uses the operating system's network stack (net.Listen) to determine
// availability. This is the most reliable method because it asks the OS
// directly, rather than parsing /proc/net/* or relying on external
// commands like `lsof` or `ss` which may require elevated permissions.
//
// The struct is currently stateless, but is defined as a struct (rather
// than bare functions) so that future options (e.g., probe timeout) can
// be added without breaking the API.
type Scanner struct{}

// NewScanner creates a new Scanner instance.
func NewScanner() *Scanner {
	return &Scanner{}
}

// IsAddrAvailable checks whether the given TCP bind address is free.
//
// It attempts net.Listen("tcp", addr); if the bind succeeds the address
// is available and the listener is closed immediately. An address with an
// empty or malformed port segment (e.g. "0.0.0.0:" when PORT was never
// set) reports false — nothing meaningful can be probed.
//
// Addresses on host 0.0.0.0 are probed as given: the server will bind all
// interfaces, so the probe must check the same address space to avoid
// false positives from a service bound only to loopback.
func (s *Scanner) IsAddrAvailable(addr string) bool {
	// An empty port segment cannot be probed: net.Listen would pick an
	// ephemeral port and always succeed, which is not what we are asking.
	if strings.HasSuffix(addr, ":") {
		return false
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return false
	}
	// Close immediately — we only needed to test availability, not
	// actually accept connections.
	defer func() { _ = listener.Close() }()
	return true
}
