// Package model defines the domain types for the launchpad CLI.
//
// The launcher is deployment glue: it sequences a database-initialization
// subprocess and a web-server process. It therefore has almost no data
// model of its own. What it does own is the contract with the hosting
// platform — exit codes, the initialization mode, and the error type that
// ties domain failures to process exit statuses.
package model

import (
	"fmt"
	"strings"
)

// InitMode selects how the database-initialization step is invoked.
// Both modes are configurations of the same single step, not separate
// components: they only differ in how the subprocess command line is formed.
type InitMode string

const (
	// InitModeScript runs a dedicated initialization program, typically
	// a standalone script checked into the application repository
	// (e.g. "python db_setup.py").
	InitModeScript InitMode = "script"

	// InitModeInline synthesizes a one-shot interpreter command that
	// imports the application factory, enters its application context,
	// and calls the schema-creation routine. No extra file is needed
	// in the application repository.
	InitModeInline InitMode = "inline"
)

// String returns the string representation of InitMode.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (m InitMode) String() string {
	return string(m)
}

// IsValid checks whether the InitMode value is one of the
// predefined valid modes.
func (m InitMode) IsValid() bool {
	switch m {
	case InitModeScript, InitModeInline:
		return true
	default:
		return false
	}
}

// ParseInitMode converts a string to an InitMode.
// Returns an error if the string does not match any valid mode.
func ParseInitMode(s string) (InitMode, error) {
	mode := InitMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid init mode: %q (valid: script, inline)", s)
	}
	return mode, nil
}

// ExitCode defines the CLI exit codes that form the launcher's contract
// with the hosting platform and its process supervisor.
//
// The initialization-failure code is fixed at 1: every non-zero exit of
// the initialization subprocess, regardless of cause, collapses into it.
// Codes 126 and 127 follow the shell convention for "found but not
// executable" and "command not found" so that a failed process
// replacement is distinguishable in supervisor logs.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully. The run
	// and serve commands never return this from a real launch — on
	// success the process image is replaced and the server's eventual
	// exit status supersedes the launcher's.
	ExitSuccess ExitCode = 0

	// ExitInitFailed indicates the database-initialization subprocess
	// exited non-zero. Generic launcher errors share this code.
	ExitInitFailed ExitCode = 1

	// ExitConfigNotFound indicates no launch configuration file was found
	// in the expected locations.
	ExitConfigNotFound ExitCode = 2

	// ExitConfigInvalid indicates the launch configuration file exists
	// but could not be parsed or failed validation.
	ExitConfigInvalid ExitCode = 3

	// ExitExecFailed indicates the server program was found but the
	// process replacement itself failed (shell convention 126).
	ExitExecFailed ExitCode = 126

	// ExitExecNotFound indicates the server program could not be found
	// on PATH (shell convention 127).
	ExitExecNotFound ExitCode = 127
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
