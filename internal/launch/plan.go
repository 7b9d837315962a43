// Package launch — plan.go resolves the launch configuration into the
// concrete subprocess argvs and bind address.
package launch

import (
	"strings"

	"github.com/mmr-tortoise/launchpad/internal/config"
	"github.com/mmr-tortoise/launchpad/internal/model"
)

// AddrPlaceholder is the literal token in server.command arguments that
// is replaced with the resolved bind address. When no argument contains
// it, the bind flag and address are appended instead.
const AddrPlaceholder = "{addr}"

// Plan is the fully resolved launch sequence: every command line and the
// bind address, computed up front so the run itself is pure sequencing.
type Plan struct {
	// InitArgv is the database-initialization command.
	InitArgv []string

	// SeedArgv is the optional post-init seed command. Nil when the
	// configuration defines no seed step.
	SeedArgv []string

	// ServerArgv is the web-server command, with the bind address
	// already substituted or appended.
	ServerArgv []string

	// Addr is the bind address, formed as "<host>:<port>". The port is
	// the PORT environment variable used verbatim: when PORT is unset
	// the address ends with a bare colon ("0.0.0.0:"), reproducing the
	// platform's literal substitution behavior. No default is supplied.
	Addr string
}

// BindAddr joins a host and a port into a bind address. The port string
// is used verbatim — an empty port yields "<host>:".
func BindAddr(host, port string) string {
	return host + ":" + port
}

// Build resolves a validated configuration and the PORT environment value
// into a Plan.
//
// The port parameter is the raw value of the PORT environment variable.
// It is not parsed or defaulted here; the launcher passes whatever the
// hosting platform supplied straight into the bind address.
func Build(cfg *config.Config, port string) *Plan {
	plan := &Plan{
		Addr: BindAddr(cfg.Server.Host, port),
	}

	// Step 1 command: dedicated script or synthesized inline snippet.
	// Both are configurations of the same single step.
	if cfg.Init.Mode == model.InitModeScript {
		plan.InitArgv = append([]string(nil), cfg.Init.Command...)
	} else {
		plan.InitArgv = InlineArgv(cfg.Init.Interpreter, cfg.Init.Module, cfg.Init.Factory, cfg.Init.Database)
	}

	if len(cfg.Init.Seed) > 0 {
		plan.SeedArgv = append([]string(nil), cfg.Init.Seed...)
	}

	plan.ServerArgv = serverArgv(cfg, plan.Addr)
	return plan
}

// serverArgv builds the server command line. If any configured argument
// contains the {addr} placeholder, every occurrence is substituted;
// otherwise "<bindFlag> <addr>" is appended, matching the conventional
// "gunicorn --bind 0.0.0.0:$PORT app:app" shape.
func serverArgv(cfg *config.Config, addr string) []string {
	argv := make([]string, 0, len(cfg.Server.Command)+2)

	substituted := false
	for _, arg := range cfg.Server.Command {
		if strings.Contains(arg, AddrPlaceholder) {
			arg = strings.ReplaceAll(arg, AddrPlaceholder, addr)
			substituted = true
		}
		argv = append(argv, arg)
	}

	if !substituted {
		argv = append(argv, cfg.Server.BindFlag, addr)
	}

	return argv
}
