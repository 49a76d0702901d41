// Package prompt implements the interactive console prompts: a validated
// free-text input and a single-choice select menu. Each prompt runs its own
// bubbletea program and blocks until the user submits or cancels.
package prompt

import (
	stderrors "errors"

	"github.com/trelliskit/cli/internal/errors"
)

// ErrCancelled is returned when the user aborts a prompt with esc or
// ctrl+c. It is a control signal, not a failure; callers translate it into
// their own cancellation path.
var ErrCancelled = errors.ErrCancelled

// ErrNonInteractive is returned when a prompt would be shown without a
// terminal attached to stdin. Callers fall back to flag values or fail.
var ErrNonInteractive = stderrors.New("interactive prompt requires a terminal")

// errorMessage reduces a validation error to the single line shown under
// the prompt. Structured errors contribute only their message; the full
// rendering is reserved for fatal output.
func errorMessage(err error) string {
	var detail *errors.DetailError
	if stderrors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
