package cli

import "github.com/yaklabco/ldoc/pkg/builder"

// Exit codes for ldoc.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitBuildFailed indicates the build completed but some documents failed.
	ExitBuildFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a build result.
func ExitCodeFromResult(result *builder.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitBuildFailed
	}
	return ExitSuccess
}
