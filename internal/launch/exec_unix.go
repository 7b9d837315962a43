//go:build unix

// Package launch — exec_unix.go performs step 2, process replacement, on
// platforms with exec semantics.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/mmr-tortoise/launchpad/internal/model"
)

// Exec replaces the current process image with the server command.
//
// On success this function never returns: the server takes over the
// launcher's PID and becomes the foreground process, and its eventual
// exit status supersedes the launcher's. Anything the launcher "would do
// afterwards" therefore does not exist.
//
// Failure is reported with shell-convention exit codes: ExitExecNotFound
// (127) when the program is not on PATH, ExitExecFailed (126) when the
// exec system call itself fails. Beyond these two codes the launcher has
// no visibility into the server process.
func Exec(argv []string) error {
	// syscall.Exec requires an absolute path; resolve through PATH the
	// same way a shell would.
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return model.WrapCLIError(model.ExitExecNotFound,
			fmt.Sprintf("server program %q not found", argv[0]), err)
	}

	if err := syscall.Exec(path, argv, os.Environ()); err != nil {
		return model.WrapCLIError(model.ExitExecFailed,
			fmt.Sprintf("failed to exec %s", path), err)
	}

	// Unreachable: syscall.Exec does not return on success.
	return nil
}
