package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	terrors "github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/features"
	"github.com/trelliskit/cli/internal/features/codegen"
	"github.com/trelliskit/cli/internal/features/entity"
	"github.com/trelliskit/cli/internal/features/service"
	"github.com/trelliskit/cli/internal/features/uiext"
	"github.com/trelliskit/cli/internal/manifest"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/plugin"
	"github.com/trelliskit/cli/internal/prompt"
	"github.com/trelliskit/cli/internal/scaffold"
	"github.com/trelliskit/cli/internal/templates"
	"github.com/trelliskit/cli/internal/version"
)

var (
	pluginNewDir      string
	pluginNewEntity   string
	pluginNewFeatures []string
	pluginNewJSON     bool
)

// cancelMessage is printed whenever the user aborts the flow at one of the
// collection prompts.
const cancelMessage = "Plugin creation cancelled."

// menuDone is the menu token that ends the feature loop.
const menuDone = "no"

// NewPluginNewCmd creates the plugin new command.
func NewPluginNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new plugin",
		Long: `Create a new Trellis plugin.

Scaffolds the plugin package, registers it in the application config and
offers follow-up generators for entities, services, UI extensions and code
generation. Anything not supplied as a flag is prompted for; with every
input flagged the command runs without a terminal.

Examples:
  # Create a plugin interactively
  trellis plugin new

  # Create a plugin without prompts
  trellis plugin new reviews --dir src/plugins/reviews

  # Create a plugin plus an entity and a service
  trellis plugin new reviews --feature entity --feature service`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPluginNew,
	}

	cmd.Flags().StringVarP(&pluginNewDir, "dir", "d", "",
		"Directory to create the plugin in (defaults by placement policy)")
	cmd.Flags().StringVar(&pluginNewEntity, "entity", "",
		"Entity name used by the entity feature (skips its prompt)")
	cmd.Flags().StringArrayVar(&pluginNewFeatures, "feature", nil,
		fmt.Sprintf("Feature to add after generation, repeatable (%s)", strings.Join(featureTokens(), ", ")))
	cmd.Flags().BoolVar(&pluginNewJSON, "json", false,
		"Output the result as JSON")

	return cmd
}

func runPluginNew(cmd *cobra.Command, args []string) error {
	if err := preflight(); err != nil {
		return err
	}

	// CollectName
	var rawName string
	if len(args) > 0 {
		rawName = args[0]
	}
	name, err := collectName(rawName)
	if err != nil {
		if errors.Is(err, terrors.ErrCancelled) {
			output.Println(cancelMessage)
			return nil
		}
		return err
	}
	names := plugin.NewNameContext(name)

	// CollectDirectory
	dir, err := collectDirectory(pluginNewDir, name, names)
	if err != nil {
		if errors.Is(err, terrors.ErrCancelled) {
			output.Println(cancelMessage)
			return nil
		}
		return err
	}

	// Flagged feature tokens fail before anything is written.
	flaggedFeatures, err := resolveFeatures(pluginNewFeatures)
	if err != nil {
		return err
	}

	// GeneratePlugin
	var ref *plugin.Reference
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		ref, genErr = scaffold.Generate(plugin.GenerateOptions{
			Name:             name,
			CustomEntityName: pluginNewEntity,
			PluginDir:        dir,
		})
		return genErr
	}, output.WithTitle("Generating plugin "+names.Kebab))
	if err != nil {
		return err
	}

	result := &output.GenerationResult{
		PluginName:  ref.Name(),
		PluginDir:   ref.Dir,
		PackageName: ref.Names.Package,
		ImportPath:  ref.ImportPath,
	}
	result.AddFile(ref.File().Path(), "Plugin definition", output.StatusCreated)
	result.AddFile(filepath.Join(ref.Dir, templates.SkeletonTypes), "Init options", output.StatusCreated)
	result.AddFile(filepath.Join(ref.Dir, templates.SkeletonConstants), "Injection token", output.StatusCreated)

	// RegisterInConfig
	var configPath string
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var regErr error
		configPath, regErr = scaffold.RegisterInConfig(ref)
		return regErr
	}, output.WithTitle("Registering plugin in the application config"))
	if err != nil {
		return err
	}
	result.ConfigPath = configPath
	result.AddFile(configPath, "Plugin registration", output.StatusPatched)

	// FeatureMenu
	fctx := &features.Context{
		Ref:            ref,
		EntityNameSeed: pluginNewEntity,
		Result:         result,
	}
	if len(flaggedFeatures) > 0 {
		err = runFeatureList(fctx, flaggedFeatures)
	} else {
		err = runFeatureMenu(fctx)
	}
	if err != nil {
		return err
	}

	if pluginNewEntity != "" && !ranFeature(result, "entity") {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("--entity %s was given but the entity feature did not run", pluginNewEntity))
	}

	// Done
	if pluginNewJSON {
		return output.WriteResult(result, output.ResultOptions{JSON: true, Writer: os.Stdout})
	}
	output.Println("")
	output.Println(output.FormatCheckmark("Plugin created"))
	output.Println("")
	return output.WriteResult(result, output.ResultOptions{Writer: os.Stdout})
}

// preflight validates the project manifest when one is present and checks
// the pinned framework release against the supported range. Outside a
// project there is nothing to check; the registration step reports the
// missing manifest itself.
func preflight() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	root, err := manifest.FindRoot(cwd)
	if err != nil {
		if errors.Is(err, manifest.ErrNoManifest) {
			output.Debug("no project manifest above working directory", "cwd", cwd)
			return nil
		}
		return err
	}

	manifestPath := filepath.Join(root, manifest.Filename)
	vres, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		return terrors.Wrap(terrors.ErrStructural, err.Error())
	}
	if !vres.Valid {
		issues := make([]string, 0, len(vres.Issues))
		for _, issue := range vres.Issues {
			issues = append(issues, issue.String())
		}
		return terrors.NewValidationError(
			"manifest does not match the schema: "+strings.Join(issues, "; "),
			manifestPath, "",
			"fix "+manifest.Filename+" before generating plugins")
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return terrors.Wrap(terrors.ErrStructural, err.Error())
	}

	if SkipVersionCheck() {
		output.Debug("framework version check skipped", "version", m.Trellis)
		return nil
	}
	if err := version.CheckFramework(m.Trellis); err != nil {
		return err
	}

	output.Debug("preflight ok", "root", root, "framework", m.Trellis)
	return nil
}

// collectName resolves the plugin name from the positional argument or an
// interactive prompt. An invalid argument becomes the editable prompt
// default on a terminal and a fatal validation error off it.
func collectName(arg string) (string, error) {
	validate := func(s string) error {
		return plugin.GenerateOptions{Name: s}.Validate()
	}

	if arg != "" {
		err := validate(arg)
		if err == nil {
			return arg, nil
		}
		if !output.IsInputTTY() {
			return "", err
		}
	}

	name, err := prompt.Input(prompt.InputOptions{
		Label:       "Plugin name",
		Placeholder: "reviews",
		Default:     arg,
		Validate:    validate,
	})
	if errors.Is(err, prompt.ErrNonInteractive) {
		return "", terrors.NewValidationError(
			"a plugin name is required when no terminal is attached",
			"", "name",
			"pass the name as an argument: trellis plugin new <name>")
	}
	return name, err
}

// collectDirectory resolves the target directory the same way: --dir flag
// first, then a prompt pre-filled with the placement-policy default.
func collectDirectory(flagDir, name string, names plugin.NameContext) (string, error) {
	validate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return terrors.NewValidationError(
				"directory must not be empty",
				"", "directory",
				"")
		}
		return plugin.GenerateOptions{Name: name, PluginDir: s}.Validate()
	}

	if flagDir != "" {
		err := validate(flagDir)
		if err == nil {
			return flagDir, nil
		}
		if !output.IsInputTTY() {
			return "", err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	def := flagDir
	if def == "" {
		def = plugin.DefaultDir(cwd, names)
	}

	dir, err := prompt.Input(prompt.InputOptions{
		Label:    "Plugin directory",
		Default:  def,
		Validate: validate,
	})
	if errors.Is(err, prompt.ErrNonInteractive) {
		if verr := validate(def); verr != nil {
			return "", verr
		}
		return def, nil
	}
	return dir, err
}

// featureRegistry lists the follow-up generators in menu order.
func featureRegistry() []features.Feature {
	return []features.Feature{
		entity.New(),
		service.New(),
		uiext.New(),
		codegen.New(),
	}
}

// featureTokens returns the stable tokens accepted by --feature.
func featureTokens() []string {
	registry := featureRegistry()
	tokens := make([]string, 0, len(registry))
	for _, feat := range registry {
		tokens = append(tokens, feat.Token())
	}
	return tokens
}

// resolveFeatures maps --feature values to generators, preserving order.
func resolveFeatures(tokens []string) ([]features.Feature, error) {
	byToken := make(map[string]features.Feature)
	for _, feat := range featureRegistry() {
		byToken[feat.Token()] = feat
	}

	resolved := make([]features.Feature, 0, len(tokens))
	for _, token := range tokens {
		feat, ok := byToken[token]
		if !ok {
			return nil, terrors.NewValidationError(
				fmt.Sprintf("unknown feature %q", token),
				"", "feature",
				"valid features: "+strings.Join(featureTokens(), ", "))
		}
		resolved = append(resolved, feat)
	}
	return resolved, nil
}

// runFeatureMenu loops the feature menu until the user finishes or
// cancels. Validation failures and cancellations inside a feature abandon
// only that feature; the menu comes back either way.
func runFeatureMenu(fctx *features.Context) error {
	registry := featureRegistry()
	byToken := make(map[string]features.Feature)
	options := []prompt.SelectOption{{
		Label: "Nothing right now",
		Value: menuDone,
	}}
	for _, feat := range registry {
		byToken[feat.Token()] = feat
		options = append(options, prompt.SelectOption{
			Label: feat.Label(),
			Value: feat.Token(),
		})
	}

	for {
		choice, err := prompt.Select("Add a feature to "+fctx.Ref.Name()+"?", options)
		if errors.Is(err, prompt.ErrNonInteractive) || errors.Is(err, terrors.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == menuDone {
			return nil
		}

		feat := byToken[choice]
		if err := feat.Run(fctx); err != nil {
			switch {
			case errors.Is(err, terrors.ErrCancelled):
				output.Debug("feature cancelled", "feature", feat.Token())
			case errors.Is(err, terrors.ErrValidation):
				output.Print(err.Error())
			default:
				return err
			}
		}
	}
}

// runFeatureList runs flagged generators in order instead of the menu.
// Validation failures are fatal here; there is no prompt loop to recover
// into. A cancellation skips the remaining generators.
func runFeatureList(fctx *features.Context, list []features.Feature) error {
	for _, feat := range list {
		if err := feat.Run(fctx); err != nil {
			if errors.Is(err, terrors.ErrCancelled) {
				output.Debug("feature cancelled, skipping the rest", "feature", feat.Token())
				return nil
			}
			return err
		}
	}
	return nil
}

// ranFeature reports whether a feature recorded itself in the result.
func ranFeature(result *output.GenerationResult, name string) bool {
	for _, feat := range result.Features {
		if feat == name {
			return true
		}
	}
	return false
}
