package port

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsAddrAvailable_FreePort verifies that a port the OS just released
// reports as available. The port is discovered by binding to :0 and
// closing the listener before probing.
func TestIsAddrAvailable_FreePort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	s := NewScanner()
	assert.True(t, s.IsAddrAvailable(addr), "recently released port should be available")
}

// TestIsAddrAvailable_OccupiedPort verifies that a port held by a live
// listener reports as unavailable.
func TestIsAddrAvailable_OccupiedPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	port := listener.Addr().(*net.TCPAddr).Port
	s := NewScanner()
	assert.False(t, s.IsAddrAvailable(fmt.Sprintf("127.0.0.1:%d", port)))
}

// TestIsAddrAvailable_EmptyPortSegment verifies that the literal "host:"
// address produced by an unset PORT cannot be probed and reports false
// rather than binding an ephemeral port.
func TestIsAddrAvailable_EmptyPortSegment(t *testing.T) {
	s := NewScanner()
	assert.False(t, s.IsAddrAvailable("0.0.0.0:"))
	assert.False(t, s.IsAddrAvailable("127.0.0.1:"))
}
