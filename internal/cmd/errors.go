package cmd

import (
	"errors"

	terrors "github.com/trelliskit/cli/internal/errors"
)

// ExitCodeFromError determines the process exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// An explicit ExitError wins over sentinel mapping.
	var exitErr *terrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, terrors.ErrCancelled):
		return ExitSuccess
	case errors.Is(err, terrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, terrors.ErrStructural):
		return ExitStructuralError
	case errors.Is(err, terrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, terrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, terrors.ErrVersion):
		return ExitVersionMismatch
	default:
		return ExitGeneralError
	}
}
