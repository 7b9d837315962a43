// Package launch — runner.go runs the initialization subprocess and maps
// its exit status onto the launcher's error contract.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mmr-tortoise/launchpad/internal/model"
)

// InitFailedMessage is the user-visible failure line for a non-zero
// initialization exit. The wording is part of the launcher's contract
// with deploy logs and must not change.
const InitFailedMessage = "Database initialization FAILED"

// Runner executes the initialization subprocess with its output passed
// straight through to the launcher's own streams, so whatever the setup
// script prints lands in the deploy log unmodified.
//
// Stdout and Stderr are fields (rather than hard-wired to os.Stdout /
// os.Stderr) so tests can capture subprocess output.
type Runner struct {
	// Stdout receives the subprocess's standard output.
	Stdout io.Writer

	// Stderr receives the subprocess's standard error.
	Stderr io.Writer
}

// NewRunner creates a Runner wired to the process's own streams.
func NewRunner() *Runner {
	return &Runner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes argv and blocks until it exits.
//
// Returns the subprocess exit code and a nil error for any run that
// actually started, including non-zero exits — the caller decides what a
// non-zero status means. The error is non-nil only when the subprocess
// could not be started at all (program missing, permission denied).
func (r *Runner) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return -1, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	// A non-zero exit surfaces as *exec.ExitError. Everything else means
	// the process never ran.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// RunInit performs step 1 of the launch sequence: the initialization
// command, followed by the optional seed command.
//
// Every failure — failure to start, non-zero exit, of either command —
// collapses into a single CLIError with ExitInitFailed and the fixed
// failure message. No category of initialization failure is distinguished
// from any other, and the subprocess output is never inspected.
func (r *Runner) RunInit(ctx context.Context, plan *Plan) error {
	if err := r.runStep(ctx, plan.InitArgv); err != nil {
		return err
	}

	if len(plan.SeedArgv) > 0 {
		if err := r.runStep(ctx, plan.SeedArgv); err != nil {
			return err
		}
	}

	return nil
}

// runStep runs a single initialization command and folds both failure
// shapes into the InitializationFailure contract.
func (r *Runner) runStep(ctx context.Context, argv []string) error {
	code, err := r.Run(ctx, argv)
	if err != nil {
		return model.WrapCLIError(model.ExitInitFailed, InitFailedMessage, err)
	}
	if code != 0 {
		return model.WrapCLIError(model.ExitInitFailed, InitFailedMessage,
			fmt.Errorf("%s exited with status %d", argv[0], code))
	}
	return nil
}
