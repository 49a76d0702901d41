// Package cmd provides command implementations for the Trellis CLI.
package cmd

// Exit codes are the CLI's contract with scripts and CI wrappers.
const (
	// ExitSuccess indicates the command completed successfully. User
	// cancellation also exits with this code.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates user-supplied input failed validation.
	ExitValidationError = 2

	// ExitStructuralError indicates a source file or bundled template did
	// not have the expected shape.
	ExitStructuralError = 3

	// ExitPermissionDenied indicates a filesystem permission failure.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a file, directory, or declaration was not found.
	ExitNotFound = 5

	// ExitVersionMismatch indicates the project pins a framework version
	// the CLI does not support.
	ExitVersionMismatch = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitStructuralError:
		return "Structural Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	case ExitVersionMismatch:
		return "Version Mismatch"
	default:
		return "Unknown"
	}
}
