// Package launch implements the launch sequence of the launchpad CLI.
//
// The sequence is strictly sequential and has exactly two steps:
//
//	INIT → (SUCCESS → SERVE | FAILURE → ABORT)
//
// Step 1 runs the database-initialization subprocess and blocks until it
// exits. Any non-zero exit status, regardless of cause, collapses into a
// single InitializationFailure with exit code 1 — no retries, no output
// inspection, no partial rollback.
//
// Step 2 replaces the launcher's process image with the web-server process
// (syscall.Exec on unix), so the server runs in the foreground under the
// same process identifier and the launcher never regains control. On
// platforms without exec semantics, the server is spawned as a child with
// signals forwarded and its exit code propagated transparently.
//
// The Plan type resolves the configuration plus the PORT environment
// variable into the concrete argvs and bind address before anything runs,
// so the sequence itself has no decisions left to make.
package launch
