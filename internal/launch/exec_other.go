//go:build !unix

// Package launch — exec_other.go emulates process replacement on platforms
// without exec semantics (notably Windows).
package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/mmr-tortoise/launchpad/internal/model"
)

// Exec emulates process replacement by running the server as a child
// process with inherited standard streams and forwarding termination
// signals to it.
//
// From the supervisor's point of view the behavior matches the unix
// variant as closely as the platform allows: the launcher contributes no
// output of its own while the server runs, and the process exit status is
// the server's — a non-zero child exit comes back as a CLIError carrying
// the child's code, which the CLI layer turns into the process exit.
// The PID differs, which is the one observable gap.
func Exec(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return model.WrapCLIError(model.ExitExecNotFound,
			fmt.Sprintf("server program %q not found", argv[0]), err)
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return model.WrapCLIError(model.ExitExecFailed,
			fmt.Sprintf("failed to start %s", path), err)
	}

	// Forward termination signals so the supervisor's stop request
	// reaches the server rather than killing only the launcher.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range sigCh {
			_ = cmd.Process.Signal(sig)
		}
	}()

	err = cmd.Wait()
	signal.Stop(sigCh)
	close(sigCh)

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Propagate the server's own exit status unchanged.
		return model.NewCLIError(model.ExitCode(exitErr.ExitCode()),
			fmt.Sprintf("server exited with status %d", exitErr.ExitCode()))
	}
	return model.WrapCLIError(model.ExitExecFailed,
		fmt.Sprintf("failed waiting for %s", path), err)
}
