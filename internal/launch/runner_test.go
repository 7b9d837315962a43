package launch

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/launchpad/internal/model"
)

// newTestRunner returns a Runner with captured output streams.
// Tests in this file spawn real subprocesses via sh, so they are skipped
// on Windows where sh is not available.
func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("subprocess tests require sh")
	}
	var out bytes.Buffer
	return &Runner{Stdout: &out, Stderr: &out}, &out
}

// TestRun_Success verifies the zero-exit path and output passthrough.
func TestRun_Success(t *testing.T) {
	r, out := newTestRunner(t)

	code, err := r.Run(context.Background(), []string{"sh", "-c", "echo setup complete"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "setup complete")
}

// TestRun_NonZeroExit verifies that a non-zero exit is reported as a code,
// not an error — the caller owns the interpretation.
func TestRun_NonZeroExit(t *testing.T) {
	r, _ := newTestRunner(t)

	code, err := r.Run(context.Background(), []string{"sh", "-c", "exit 2"})
	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

// TestRun_ProgramMissing verifies the failure-to-start path.
func TestRun_ProgramMissing(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.Run(context.Background(), []string{"launchpad-no-such-program"})
	require.Error(t, err)
}

// TestRun_EmptyArgv verifies the guard against an empty command.
func TestRun_EmptyArgv(t *testing.T) {
	r := NewRunner()
	_, err := r.Run(context.Background(), nil)
	require.Error(t, err)
}

// TestRunInit_Failure covers spec scenario B: any non-zero initialization
// exit collapses into exit code 1 with the fixed failure message.
func TestRunInit_Failure(t *testing.T) {
	r, _ := newTestRunner(t)

	plan := &Plan{InitArgv: []string{"sh", "-c", "exit 2"}}
	err := r.RunInit(context.Background(), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), InitFailedMessage)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInitFailed, cliErr.Code)
}

// TestRunInit_FailureCollapsesCategories verifies that a missing program
// and a non-zero exit produce the same error contract — the launcher does
// not distinguish categories of initialization failure.
func TestRunInit_FailureCollapsesCategories(t *testing.T) {
	r, _ := newTestRunner(t)

	plan := &Plan{InitArgv: []string{"launchpad-no-such-program"}}
	err := r.RunInit(context.Background(), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), InitFailedMessage)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInitFailed, cliErr.Code)
}

// TestRunInit_SeedRunsAfterInit verifies the seed step runs only after a
// successful init, and that a seed failure aborts like an init failure.
func TestRunInit_SeedRunsAfterInit(t *testing.T) {
	r, out := newTestRunner(t)

	plan := &Plan{
		InitArgv: []string{"sh", "-c", "echo init-ran"},
		SeedArgv: []string{"sh", "-c", "echo seed-ran"},
	}
	require.NoError(t, r.RunInit(context.Background(), plan))
	assert.Contains(t, out.String(), "init-ran")
	assert.Contains(t, out.String(), "seed-ran")

	// Seed failure collapses into the same InitializationFailure.
	r2, out2 := newTestRunner(t)
	plan2 := &Plan{
		InitArgv: []string{"sh", "-c", "echo init-ran"},
		SeedArgv: []string{"sh", "-c", "exit 3"},
	}
	err := r2.RunInit(context.Background(), plan2)
	require.Error(t, err)
	assert.Contains(t, out2.String(), "init-ran")

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitInitFailed, cliErr.Code)
}

// TestRunInit_SeedSkippedOnInitFailure verifies that the seed command is
// never invoked once initialization has failed.
func TestRunInit_SeedSkippedOnInitFailure(t *testing.T) {
	r, out := newTestRunner(t)

	plan := &Plan{
		InitArgv: []string{"sh", "-c", "exit 1"},
		SeedArgv: []string{"sh", "-c", "echo seed-ran"},
	}
	err := r.RunInit(context.Background(), plan)
	require.Error(t, err)
	assert.NotContains(t, out.String(), "seed-ran")
}

// TestExec_NotFound verifies the 127 contract for a missing server
// program. This is the only Exec path that can be tested in-process:
// a successful Exec would replace the test runner itself.
func TestExec_NotFound(t *testing.T) {
	err := Exec([]string{"launchpad-no-such-server"})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitExecNotFound, cliErr.Code)
}
