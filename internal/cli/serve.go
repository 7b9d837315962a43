// Package cli — serve.go implements the "launchpad serve" command.
//
// serve skips initialization and goes straight to process replacement.
// It pairs with "launchpad init" for platforms that run the two steps in
// separate deploy phases.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/launchpad/internal/launch"
)

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	dryRun bool // --dry-run: resolve and print the server command without executing
}

// NewServeCommand creates the "serve" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Exec the web server without running initialization",
		Long: `Replace the launcher process with the web server, skipping the
database-initialization step.

The bind address is "<host>:$PORT" with PORT taken verbatim from the
environment. On success this command does not return — the server takes
over the process.

Examples:
  launchpad serve
  launchpad serve --dry-run`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the resolved server command without executing it")

	return cmd
}

// runServe is the main logic function for the serve command.
func runServe(flags *serveFlags) error {
	cfg, path, err := loadLaunchConfig()
	if err != nil {
		return err
	}
	VerboseLog("Loaded launch config from %s", path)

	plan := launch.Build(cfg, os.Getenv("PORT"))
	VerboseLog("Server command: %s", strings.Join(plan.ServerArgv, " "))

	if flags.dryRun {
		printPlan(plan)
		return nil
	}

	printServe(plan)
	return execServer(plan.ServerArgv)
}
