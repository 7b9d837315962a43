// Package cli — validate.go implements the "launchpad validate" command.
//
// validate loads the configuration, resolves the full launch plan against
// the current environment, and reports it without executing anything.
// It also probes whether the resolved bind address is currently free —
// a diagnostic only; the run command itself never checks the port.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/launchpad/internal/launch"
	"github.com/mmr-tortoise/launchpad/internal/model"
	"github.com/mmr-tortoise/launchpad/internal/port"
)

// NewValidateCommand creates the "validate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the launch config and report the resolved plan",
		Long: `Load and validate the launch configuration, resolve the init and
server commands against the current environment (including $PORT), and
print the result without running anything.

Warnings — an unset PORT, or a bind address already in use — do not fail
the command; only configuration errors do.

Examples:
  launchpad validate
  launchpad validate --json
  PORT=5000 launchpad validate`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}

	return cmd
}

// runValidate is the main logic function for the validate command.
func runValidate() error {
	cfg, path, err := loadLaunchConfig()
	if err != nil {
		return err
	}

	portEnv := os.Getenv("PORT")
	plan := launch.Build(cfg, portEnv)

	printValidateResult(cfg.Init.Mode, path, plan, collectWarnings(portEnv, plan))
	return nil
}

// collectWarnings gathers the advisory findings for a resolved plan.
// Configuration errors were already surfaced by loadLaunchConfig;
// everything here is non-fatal — validate still exits 0 with warnings.
func collectWarnings(portEnv string, plan *launch.Plan) []string {
	var warnings []string
	if portEnv == "" {
		warnings = append(warnings,
			fmt.Sprintf("PORT is not set; the bind address will be %q", plan.Addr))
	} else if !port.NewScanner().IsAddrAvailable(plan.Addr) {
		warnings = append(warnings,
			fmt.Sprintf("bind address %s is currently in use", plan.Addr))
	}
	return warnings
}

// printValidateResult outputs the validate result in text or JSON format.
func printValidateResult(mode model.InitMode, path string, plan *launch.Plan, warnings []string) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"config":   path,
			"initMode": mode.String(),
			"addr":     plan.Addr,
			"init":     plan.InitArgv,
			"server":   plan.ServerArgv,
		}
		if len(plan.SeedArgv) > 0 {
			result["seed"] = plan.SeedArgv
		}
		if len(warnings) > 0 {
			result["warnings"] = warnings
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Launch config OK: %s\n", path)
	fmt.Printf("  init (%s): %s\n", mode, strings.Join(plan.InitArgv, " "))
	if len(plan.SeedArgv) > 0 {
		fmt.Printf("  seed: %s\n", strings.Join(plan.SeedArgv, " "))
	}
	fmt.Printf("  server: %s\n", strings.Join(plan.ServerArgv, " "))
	fmt.Printf("  addr: %s\n", plan.Addr)

	for _, w := range warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
