// Package cli — init.go implements the "launchpad init" command.
//
// init runs only the database-initialization step, without starting the
// server. This mirrors platforms that run schema setup in a separate
// release phase before the web process is launched.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/launchpad/internal/launch"
)

// NewInitCommand creates the "init" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Run only the database-initialization step",
		Long: `Run the database-initialization subprocess (and the optional seed
command) without launching the server.

Exit code 1 signals initialization failure, identical to the failure
behavior of "launchpad run".

Examples:
  launchpad init
  launchpad init --config deploy/launchpad.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context())
		},
	}

	return cmd
}

// runInit is the main logic function for the init command.
func runInit(ctx context.Context) error {
	cfg, path, err := loadLaunchConfig()
	if err != nil {
		return err
	}
	VerboseLog("Loaded launch config from %s", path)

	// The plan still resolves the bind address, but only the init (and
	// seed) commands are used here.
	plan := launch.Build(cfg, os.Getenv("PORT"))

	runner := launch.NewRunner()
	if err := runner.RunInit(ctx, plan); err != nil {
		return err
	}

	if IsJSONOutput() {
		result := map[string]interface{}{
			"action": "init",
			"status": "complete",
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Println("Database initialization complete")
	return nil
}
