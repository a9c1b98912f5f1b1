package main

import "os"

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error, a declined installation, or
	// an interrupted run
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2
)

// exitWithCode exits with the specified exit code. Delegated helper runs
// exit with yay's own code instead.
func exitWithCode(code int) {
	os.Exit(code)
}
