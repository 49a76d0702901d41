// Package features defines the contract between the plugin-new flow and
// the follow-up generators offered once a plugin exists.
package features

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/trelliskit/cli/internal/casing"
	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/plugin"
	"github.com/trelliskit/cli/internal/prompt"
)

// Feature is one follow-up generator run against a freshly created plugin.
// Implementations run strictly sequentially, never concurrently with each
// other or with the config patch.
type Feature interface {
	// Token is the stable menu value identifying the feature.
	Token() string
	// Label is the menu row shown for the feature.
	Label() string
	// Run executes the feature's prompt, generate and persist cycle.
	Run(ctx *Context) error
}

// Context carries the shared state every feature works against.
type Context struct {
	// Ref is the plugin the whole session targets.
	Ref *plugin.Reference
	// EntityNameSeed pre-fills the entity feature's name prompt.
	EntityNameSeed string
	// Result collects file records for the completion output.
	Result *output.GenerationResult
}

// identRE matches exported-identifier material: a leading letter followed
// by letters and digits.
var identRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// NameRequest configures a generator's identifier prompt.
type NameRequest struct {
	// Label is shown above the prompt.
	Label string
	// Default pre-fills the prompt and is taken as-is off-terminal.
	Default string
	// Taken reports a conflict for a candidate name, keeping the prompt
	// open. Generators use it to reject names whose target file exists.
	Taken func(string) error
}

// AskName prompts for an identifier-shaped name. Off-terminal the default
// is returned instead, validated the same way.
func AskName(req NameRequest) (string, error) {
	validate := func(s string) error {
		if !identRE.MatchString(s) {
			return errors.NewValidationError(
				fmt.Sprintf("name %q must start with a letter and contain only letters and digits", s),
				"", "name",
				`use an identifier such as "Review"`)
		}
		if req.Taken != nil {
			return req.Taken(s)
		}
		return nil
	}

	name, err := prompt.Input(prompt.InputOptions{
		Label:    req.Label,
		Default:  req.Default,
		Validate: validate,
	})
	if stderrors.Is(err, prompt.ErrNonInteractive) {
		if verr := validate(req.Default); verr != nil {
			return "", verr
		}
		return req.Default, nil
	}
	return name, err
}

// Snake maps a name to snake_case for generated file names.
func Snake(s string) string {
	return strings.ReplaceAll(casing.Kebab(s), "-", "_")
}
