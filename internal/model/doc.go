// Package model defines the domain types and value objects for the
// launchpad CLI.
//
// This package contains pure data structures with no external dependencies.
// The launcher owns almost no state of its own — the only domain values are
// the initialization mode (InitMode), the exit status contract between the
// launcher and the hosting platform (ExitCode), and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
