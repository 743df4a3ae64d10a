package main

import "os"

// Environment variable names recognized by the CLI.
const (
	// EnvCommands points at a command registry file, overridden by the
	// --registry flag.
	EnvCommands = "WEB2PDF_COMMANDS"
)

// registryRef resolves the registry reference: the flag wins, then the
// environment, then empty (built-in declarations).
func registryRef(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvCommands)
}
