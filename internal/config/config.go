// Package config — config.go implements loading, defaulting, and validation
// of the launchpad configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/launchpad/internal/model"
)

// Default values applied by ApplyDefaults. They match the conventional
// Flask + gunicorn deployment the launcher was built for, so a minimal
// config file only needs the server command.
const (
	// DefaultHost is the address the server binds to. Hosting platforms
	// route external traffic to all interfaces, hence 0.0.0.0.
	DefaultHost = "0.0.0.0"

	// DefaultBindFlag is the server flag that receives the bind address.
	DefaultBindFlag = "--bind"

	// DefaultInterpreter runs the inline initialization snippet.
	DefaultInterpreter = "python"

	// DefaultModule is the application module imported by inline init.
	DefaultModule = "app"

	// DefaultFactory is the application-factory function called by
	// inline init to obtain an application instance.
	DefaultFactory = "create_app"

	// DefaultDatabase is the name of the database object whose
	// schema-creation routine inline init calls.
	DefaultDatabase = "db"
)

// Config is the root of the launchpad configuration file.
type Config struct {
	// Init configures the database-initialization step.
	Init InitConfig `json:"init" yaml:"init"`

	// Server configures the web-server process that replaces the
	// launcher after successful initialization.
	Server ServerConfig `json:"server" yaml:"server"`
}

// InitConfig describes how the database-initialization subprocess is
// invoked. The two modes are alternative configurations of the same
// single step:
//
//   - script: run Command as-is (e.g. ["python", "db_setup.py"])
//   - inline: synthesize "<interpreter> -c <snippet>" where the snippet
//     imports Factory from Module, enters the application context, and
//     calls Database.create_all()
//
// If Mode is empty it is inferred: a non-empty Command means script,
// otherwise inline.
type InitConfig struct {
	// Mode selects the invocation variant ("script" or "inline").
	Mode model.InitMode `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Command is the initialization argv for script mode.
	Command []string `json:"command,omitempty" yaml:"command,omitempty"`

	// Interpreter is the program that runs the inline snippet.
	// Defaults to "python". Inline mode only.
	Interpreter string `json:"interpreter,omitempty" yaml:"interpreter,omitempty"`

	// Module is the application module to import. Defaults to "app".
	// Inline mode only.
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// Factory is the application-factory function name.
	// Defaults to "create_app". Inline mode only.
	Factory string `json:"factory,omitempty" yaml:"factory,omitempty"`

	// Database is the database object name whose create_all() is called.
	// Defaults to "db". Inline mode only.
	Database string `json:"database,omitempty" yaml:"database,omitempty"`

	// Seed is an optional argv run after successful initialization,
	// typically to load demo or fixture data. A non-zero exit is treated
	// exactly like an initialization failure.
	Seed []string `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ServerConfig describes the web-server process.
type ServerConfig struct {
	// Command is the server argv, e.g. ["gunicorn", "app:app"].
	// If any element contains the literal placeholder "{addr}", the
	// resolved bind address is substituted there; otherwise
	// "<bindFlag> <addr>" is appended to the argv.
	Command []string `json:"command" yaml:"command"`

	// Host is the bind host. Defaults to "0.0.0.0". The port half of
	// the bind address always comes from the PORT environment variable,
	// used verbatim.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// BindFlag is the flag that precedes the bind address when no
	// placeholder is present. Defaults to "--bind" (gunicorn's flag).
	BindFlag string `json:"bindFlag,omitempty" yaml:"bindFlag,omitempty"`
}

// candidateNames lists the configuration file names searched by Find,
// in priority order. JSONC comes first because it is the format the
// launcher's own examples use.
var candidateNames = []string{
	"launchpad.json",
	"launchpad.jsonc",
	"launchpad.yaml",
	"launchpad.yml",
}

// Find searches for a launchpad configuration file in the given project
// directory.
//
// Returns the path of the first candidate that exists, or a CLIError
// with ExitConfigNotFound if none does.
func Find(projectDir string) (string, error) {
	for _, name := range candidateNames {
		path := filepath.Join(projectDir, name)
		// os.Stat checks existence without reading contents.
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", model.NewCLIError(
		model.ExitConfigNotFound,
		fmt.Sprintf("launch config not found in %s (searched %s)",
			projectDir, strings.Join(candidateNames, ", ")),
	)
}

// Load reads and parses a launchpad configuration file, applies defaults,
// and validates the result.
//
// The format is chosen by file extension: .yaml/.yml parse as YAML,
// everything else as JSONC (JSON with comments and trailing commas,
// stripped via github.com/tidwall/jsonc before encoding/json parsing).
//
// Returns a CLIError with ExitConfigNotFound if the file does not exist,
// or ExitConfigInvalid if it cannot be parsed or fails validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("launch config not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read launch config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse launch config at %s", path),
				err,
			)
		}
	default:
		// Strip JSONC comments (// and /* */) and trailing commas before
		// parsing. Hand-written deployment configs frequently carry
		// comments, so plain encoding/json would be too strict.
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &cfg); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse launch config at %s", path),
				err,
			)
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills in unset fields with the conventional deployment
// values and infers the init mode when it is not given explicitly.
func (c *Config) ApplyDefaults() {
	// Normalize an explicitly configured mode. Config files are
	// hand-written, so "Script" and "INLINE" count. Values that do not
	// parse are left as-is for Validate to reject.
	if c.Init.Mode != "" {
		if mode, err := model.ParseInitMode(string(c.Init.Mode)); err == nil {
			c.Init.Mode = mode
		}
	}

	// Infer the init mode from the presence of an explicit command.
	if c.Init.Mode == "" {
		if len(c.Init.Command) > 0 {
			c.Init.Mode = model.InitModeScript
		} else {
			c.Init.Mode = model.InitModeInline
		}
	}

	if c.Init.Interpreter == "" {
		c.Init.Interpreter = DefaultInterpreter
	}
	if c.Init.Module == "" {
		c.Init.Module = DefaultModule
	}
	if c.Init.Factory == "" {
		c.Init.Factory = DefaultFactory
	}
	if c.Init.Database == "" {
		c.Init.Database = DefaultDatabase
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.BindFlag == "" {
		c.Server.BindFlag = DefaultBindFlag
	}
}

// Validate checks the configuration for contradictions that would make
// the launch sequence meaningless. It assumes ApplyDefaults has run.
//
// All validation failures return a CLIError with ExitConfigInvalid.
func (c *Config) Validate() error {
	if !c.Init.Mode.IsValid() {
		return model.NewCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("invalid init mode %q (valid: script, inline)", c.Init.Mode))
	}

	if c.Init.Mode == model.InitModeScript && len(c.Init.Command) == 0 {
		return model.NewCLIError(model.ExitConfigInvalid,
			"init mode is \"script\" but init.command is empty")
	}

	if c.Init.Mode == model.InitModeInline && len(c.Init.Command) > 0 {
		return model.NewCLIError(model.ExitConfigInvalid,
			"init mode is \"inline\" but init.command is set (use mode \"script\" or drop the command)")
	}

	if len(c.Server.Command) == 0 {
		return model.NewCLIError(model.ExitConfigInvalid,
			"server.command must not be empty")
	}

	return nil
}
