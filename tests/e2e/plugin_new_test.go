// Package e2e provides end-to-end tests for the Trellis CLI binary.
package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trelliskit/cli/internal/testutil"
)

var trellisBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "trellis-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	trellisBinary = filepath.Join(tmpDir, "trellis")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", trellisBinary, "../../cmd/trellis")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build trellis binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runTrellisHome runs the binary with HOME pointed at the given directory.
// Stdin is not a terminal, so every prompt falls back to flag values and
// defaults.
func runTrellisHome(t *testing.T, home, workDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, trellisBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"TRELLIS_CONFIG=",
		"TRELLIS_SKIP_VERSION_CHECK=",
	)

	stdoutBytes, err := cmd.Output()
	var stderrBytes []byte
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderrBytes = exitErr.Stderr
	}

	return string(stdoutBytes), string(stderrBytes), err
}

// runTrellis runs the binary with a scratch HOME so the host's own tool
// config cannot leak in.
func runTrellis(t *testing.T, workDir string, args ...string) (string, string, error) {
	t.Helper()
	return runTrellisHome(t, t.TempDir(), workDir, args...)
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.ExitCode()
}

func TestE2E_PluginNew(t *testing.T) {
	project := testutil.NewProject(t)

	stdout, stderr, err := runTrellis(t, project, "plugin", "new", "reviews")
	require.NoError(t, err, "stderr: %s", stderr)

	pluginDir := filepath.Join(project, "src", "plugins", "reviews")
	assert.FileExists(t, filepath.Join(pluginDir, "reviews_plugin.go"))
	assert.FileExists(t, filepath.Join(pluginDir, "types.go"))
	assert.FileExists(t, filepath.Join(pluginDir, "constants.go"))

	configSrc := testutil.ReadFile(t, filepath.Join(project, "src", "app", "config.go"))
	assert.Contains(t, configSrc, "reviews.ReviewsPlugin{}.Init(reviews.InitOptions{})")

	assert.Contains(t, stdout, "Plugin created")
	assert.Contains(t, stdout, "reviews_plugin.go")
}

func TestE2E_PluginNew_WithFeatures(t *testing.T) {
	project := testutil.NewProject(t)
	pluginDir := filepath.Join(project, "src", "plugins", "reviews")

	_, stderr, err := runTrellis(t, project, "plugin", "new", "reviews",
		"--entity", "Review",
		"--feature", "entity",
		"--feature", "service")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(pluginDir, "entity_review.go"))
	assert.FileExists(t, filepath.Join(pluginDir, "service_reviews.go"))

	pluginSrc := testutil.ReadFile(t, filepath.Join(pluginDir, "reviews_plugin.go"))
	assert.Contains(t, pluginSrc, "Review{}")
	assert.Contains(t, pluginSrc, "trellis.Provide(NewReviewsService)")
}

func TestE2E_PluginNew_JSON(t *testing.T) {
	project := testutil.NewProject(t)

	stdout, stderr, err := runTrellis(t, project, "plugin", "new", "reviews", "--json")
	require.NoError(t, err, "stderr: %s", stderr)

	var result struct {
		PluginName  string `json:"pluginName"`
		PackageName string `json:"packageName"`
		ImportPath  string `json:"importPath"`
		Files       []struct {
			Path   string `json:"path"`
			Status string `json:"status"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result), "stdout: %s", stdout)

	assert.Equal(t, "ReviewsPlugin", result.PluginName)
	assert.Equal(t, "reviews", result.PackageName)
	assert.Equal(t, "example.com/shop/src/plugins/reviews", result.ImportPath)
	assert.NotEmpty(t, result.Files)
}

func TestE2E_PluginNew_InvalidName(t *testing.T) {
	project := testutil.NewProject(t)

	_, _, err := runTrellis(t, project, "plugin", "new", "Nope!")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(t, err), "expected exit code 2 for validation error")
}

func TestE2E_PluginNew_DirectoryExists(t *testing.T) {
	project := testutil.NewProject(t)
	existingDir := filepath.Join(project, "src", "plugins", "reviews")
	require.NoError(t, os.MkdirAll(existingDir, 0o755))

	_, _, err := runTrellis(t, project, "plugin", "new", "reviews", "--dir", existingDir)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(t, err), "expected exit code 2 for validation error")
}

func TestE2E_PluginNew_VersionMismatch(t *testing.T) {
	project := testutil.NewProject(t)
	testutil.WriteFile(t, project, "trellis.yaml", "name: shop\ntrellis: 1.0.0\n")

	_, _, err := runTrellis(t, project, "plugin", "new", "reviews")
	require.Error(t, err)
	assert.Equal(t, 6, exitCode(t, err), "expected exit code 6 for version mismatch")
}

func TestE2E_PluginNew_OutsideProject(t *testing.T) {
	workDir := t.TempDir()

	_, _, err := runTrellis(t, workDir, "plugin", "new", "reviews")
	require.Error(t, err)
	assert.Equal(t, 3, exitCode(t, err), "expected exit code 3 for structural error")
}

func TestE2E_PluginList(t *testing.T) {
	project := testutil.NewProject(t)

	_, stderr, err := runTrellis(t, project, "plugin", "new", "reviews")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runTrellis(t, project, "plugin", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "ReviewsPlugin")
	assert.Contains(t, stdout, "example.com/shop/src/plugins/reviews")

	stdout, stderr, err = runTrellis(t, project, "plugin", "list", "--output", "json")
	require.NoError(t, err, "stderr: %s", stderr)

	var regs []struct {
		Plugin     string `json:"plugin"`
		Package    string `json:"package"`
		ImportPath string `json:"importPath"`
		Expr       string `json:"expr"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &regs), "stdout: %s", stdout)
	require.Len(t, regs, 1)
	assert.Equal(t, "ReviewsPlugin", regs[0].Plugin)
	assert.Equal(t, "reviews", regs[0].Package)
	assert.Equal(t, "example.com/shop/src/plugins/reviews", regs[0].ImportPath)
}

func TestE2E_PluginList_Empty(t *testing.T) {
	project := testutil.NewProject(t)

	stdout, stderr, err := runTrellis(t, project, "plugin", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "No plugins registered")
}

func TestE2E_ConfigLifecycle(t *testing.T) {
	home := t.TempDir()
	workDir := t.TempDir()

	_, stderr, err := runTrellisHome(t, home, workDir, "config", "init")
	require.NoError(t, err, "config init failed: %s", stderr)
	assert.FileExists(t, filepath.Join(home, ".trellis", "config.yaml"))

	_, stderr, err = runTrellisHome(t, home, workDir, "config", "vet")
	require.NoError(t, err, "config vet failed: %s", stderr)
}

func TestE2E_Version(t *testing.T) {
	stdout, stderr, err := runTrellis(t, t.TempDir(), "version")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "trellis version")
	assert.Contains(t, stdout, "Framework")
}

func TestE2E_Help(t *testing.T) {
	stdout, stderr, err := runTrellis(t, t.TempDir(), "--help")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "plugin")
	assert.Contains(t, stdout, "config")
	assert.Contains(t, stdout, "version")
}
