//go:build !unix

package launch

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/launchpad/internal/model"
)

// shell returns an argv prefix that runs a one-line command on this
// platform. Only Windows is exercised in practice; other non-unix ports
// are skipped.
func shell(t *testing.T, command string) []string {
	t.Helper()
	if runtime.GOOS != "windows" {
		t.Skip("fallback exec test requires cmd.exe")
	}
	return []string{"cmd", "/c", command}
}

// TestExec_ChildExitCodePropagated verifies that the emulated process
// replacement surfaces the child's non-zero exit status as a CLIError
// with that exact code, so the CLI layer exits with it.
func TestExec_ChildExitCodePropagated(t *testing.T) {
	err := Exec(shell(t, "exit 3"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitCode(3), cliErr.Code)
}

// TestExec_ChildSuccess verifies that a zero child exit returns nil and
// the launcher's own exit status stays 0.
func TestExec_ChildSuccess(t *testing.T) {
	require.NoError(t, Exec(shell(t, "exit 0")))
}
