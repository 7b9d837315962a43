package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- InitMode tests ---

// TestParseInitMode_Valid verifies that both init modes parse from their
// string forms, including uppercase input (modes are case-insensitive
// because they come from hand-written config files).
func TestParseInitMode_Valid(t *testing.T) {
	cases := []struct {
		input string
		want  InitMode
	}{
		{"script", InitModeScript},
		{"inline", InitModeInline},
		{"SCRIPT", InitModeScript},
		{"Inline", InitModeInline},
	}

	for _, tc := range cases {
		mode, err := ParseInitMode(tc.input)
		require.NoError(t, err, "ParseInitMode(%q) should succeed", tc.input)
		assert.Equal(t, tc.want, mode)
		assert.True(t, mode.IsValid())
	}
}

// TestParseInitMode_Invalid verifies that unknown mode strings are rejected
// with a descriptive error rather than being passed through.
func TestParseInitMode_Invalid(t *testing.T) {
	for _, input := range []string{"", "both", "python"} {
		_, err := ParseInitMode(input)
		require.Error(t, err, "ParseInitMode(%q) should fail", input)
		assert.Contains(t, err.Error(), "invalid init mode")
	}
}

// TestInitMode_String verifies the fmt.Stringer implementation.
func TestInitMode_String(t *testing.T) {
	assert.Equal(t, "script", InitModeScript.String())
	assert.Equal(t, "inline", fmt.Sprintf("%s", InitModeInline))
}

// --- CLIError tests ---

// TestCLIError_Error verifies message formatting with and without an
// underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitInitFailed, "Database initialization FAILED")
	assert.Equal(t, "Database initialization FAILED", plain.Error())
	assert.Equal(t, ExitInitFailed, plain.Code)

	underlying := errors.New("exit status 2")
	wrapped := WrapCLIError(ExitInitFailed, "Database initialization FAILED", underlying)
	assert.Equal(t, "Database initialization FAILED: exit status 2", wrapped.Error())
}

// TestCLIError_Unwrap verifies that errors.Is can see through a CLIError
// to the underlying cause.
func TestCLIError_Unwrap(t *testing.T) {
	underlying := errors.New("no such file")
	wrapped := WrapCLIError(ExitConfigNotFound, "launch config not found", underlying)

	assert.True(t, errors.Is(wrapped, underlying))

	var cliErr *CLIError
	require.True(t, errors.As(error(wrapped), &cliErr))
	assert.Equal(t, ExitConfigNotFound, cliErr.Code)
}

// TestExitCodes verifies the numeric values of the exit-code contract.
// These values are consumed by the hosting platform's process supervisor,
// so they must never drift.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, int(ExitSuccess))
	assert.Equal(t, 1, int(ExitInitFailed))
	assert.Equal(t, 2, int(ExitConfigNotFound))
	assert.Equal(t, 3, int(ExitConfigInvalid))
	assert.Equal(t, 126, int(ExitExecFailed))
	assert.Equal(t, 127, int(ExitExecNotFound))
}
