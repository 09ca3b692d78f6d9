package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors or any unexpected failure.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments or invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested contact was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: An empty contact name.
	ExitValidation = 5
)
