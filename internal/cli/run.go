// Package cli — run.go implements the "launchpad run" command.
//
// run is the canonical launch sequence invoked by the hosting platform:
//
//  1. Run the database-initialization subprocess and wait for it.
//  2. On any non-zero exit: report "Database initialization FAILED" and
//     abort with exit code 1. The server is never started.
//  3. On success: replace the launcher's process image with the web-server
//     process bound to 0.0.0.0:$PORT.
//
// After step 3 no launcher code executes — the server owns the process.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/launchpad/internal/launch"
)

// execServer performs the process replacement. It is a package variable
// so tests can observe the handoff without their own process being
// replaced.
var execServer = launch.Exec

// runFlags holds the flag values for the run command.
type runFlags struct {
	dryRun bool // --dry-run: resolve and print the plan without executing
}

// NewRunCommand creates the "run" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Initialize the database, then exec the web server",
		Long: `Run the full launch sequence: database initialization followed by
process replacement with the web server.

The bind address is "<host>:$PORT" with PORT taken verbatim from the
environment — if PORT is unset the port segment is empty. Initialization
failure aborts with exit code 1 before the server command is ever invoked.

Examples:
  launchpad run
  launchpad run --config deploy/launchpad.yaml
  launchpad run --dry-run`,

		// The hosting platform invokes the launcher with no arguments.
		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the resolved commands without executing anything")

	return cmd
}

// runRun is the main logic function for the run command.
func runRun(ctx context.Context, flags *runFlags) error {
	// Step 0: Resolve configuration and PORT into a concrete plan.
	cfg, path, err := loadLaunchConfig()
	if err != nil {
		return err
	}
	VerboseLog("Loaded launch config from %s", path)

	plan := launch.Build(cfg, os.Getenv("PORT"))
	VerboseLog("Init command: %s", strings.Join(plan.InitArgv, " "))
	VerboseLog("Server command: %s", strings.Join(plan.ServerArgv, " "))

	if flags.dryRun {
		printPlan(plan)
		return nil
	}

	// Step 1: Database initialization. Blocks until the subprocess exits;
	// any failure aborts here with exit code 1.
	runner := launch.NewRunner()
	if err := runner.RunInit(ctx, plan); err != nil {
		return err
	}

	if !IsJSONOutput() {
		fmt.Println("Database initialization complete")
	}
	printServe(plan)

	// Step 2: Process replacement. On unix this call never returns on
	// success — the server becomes the foreground process under the
	// launcher's PID. On fallback platforms it returns the server's own
	// exit status once the child terminates.
	return execServer(plan.ServerArgv)
}

// printServe emits the status line just before the handoff to the server.
// In JSON mode this is the launcher's last structured output before the
// server owns the streams.
func printServe(plan *launch.Plan) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"action":  "serve",
			"addr":    plan.Addr,
			"command": plan.ServerArgv,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Starting server on %s\n", plan.Addr)
}

// printPlan outputs the resolved plan for --dry-run, in text or JSON
// format based on the --json global flag.
func printPlan(plan *launch.Plan) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"addr":   plan.Addr,
			"init":   plan.InitArgv,
			"server": plan.ServerArgv,
		}
		if len(plan.SeedArgv) > 0 {
			result["seed"] = plan.SeedArgv
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("  init:   %s\n", strings.Join(plan.InitArgv, " "))
	if len(plan.SeedArgv) > 0 {
		fmt.Printf("  seed:   %s\n", strings.Join(plan.SeedArgv, " "))
	}
	fmt.Printf("  server: %s\n", strings.Join(plan.ServerArgv, " "))
	fmt.Printf("  addr:   %s\n", plan.Addr)
}
