package cli

// Exit codes for the labinit CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitGenerationFailed indicates project generation failed
	ExitGenerationFailed = 1

	// ExitInvalidConfig indicates the configuration could not be loaded or validated
	ExitInvalidConfig = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingDependencies indicates required dependencies are missing
	ExitMissingDependencies = 4
)
