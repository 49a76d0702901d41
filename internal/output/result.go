package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ResultOptions controls how a generation result is written.
type ResultOptions struct {
	// JSON outputs structured JSON instead of human-readable text
	JSON bool
	// Writer is the output destination
	Writer io.Writer
}

// GeneratedFile describes one file touched by generation.
type GeneratedFile struct {
	// Path is the file path relative to the working directory.
	Path string `json:"path"`
	// Description is a short human label for the file's role.
	Description string `json:"description,omitempty"`
	// Status is one of the file status constants.
	Status string `json:"status"`
}

// GenerationResult is the structured outcome of one plugin generation,
// including any features added during the session.
type GenerationResult struct {
	PluginName  string          `json:"pluginName"`
	PluginDir   string          `json:"pluginDir"`
	PackageName string          `json:"packageName"`
	ImportPath  string          `json:"importPath,omitempty"`
	Files       []GeneratedFile `json:"files"`
	ConfigPath  string          `json:"configPath,omitempty"`
	Features    []string        `json:"features,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// AddFile records a touched file.
func (r *GenerationResult) AddFile(path, description, status string) {
	r.Files = append(r.Files, GeneratedFile{
		Path:        path,
		Description: description,
		Status:      status,
	})
}

// AddFeature records a feature added during the session.
func (r *GenerationResult) AddFeature(name string) {
	r.Features = append(r.Features, name)
}

// WriteResult writes a generation result in the requested format.
func WriteResult(result *GenerationResult, opts ResultOptions) error {
	if opts.JSON {
		return writeResultJSON(result, opts.Writer)
	}
	return writeResultHuman(result, opts.Writer)
}

// writeResultJSON writes the result as indented JSON.
func writeResultJSON(result *GenerationResult, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeResultHuman writes the result in human-readable form: a header, a
// file tree of everything under the plugin directory, and flat lines for
// files outside it.
func writeResultHuman(result *GenerationResult, w io.Writer) error {
	var sb strings.Builder

	sb.WriteString(StyleSummary.Render("Plugin " + result.PluginName))
	sb.WriteString("\n\n")

	inDir := make(map[string]string)
	var outside []GeneratedFile
	for _, f := range result.Files {
		rel, err := filepath.Rel(result.PluginDir, f.Path)
		if err == nil && !strings.HasPrefix(rel, "..") {
			inDir[rel] = f.Description
		} else {
			outside = append(outside, f)
		}
	}

	if len(inDir) > 0 {
		sb.WriteString(RenderFileTree(filepath.Base(result.PluginDir), inDir))
		sb.WriteString("\n")
	}

	for _, f := range outside {
		sb.WriteString(FormatFileLine(f.Path, f.Status))
		sb.WriteString("\n")
	}
	if len(outside) > 0 {
		sb.WriteString("\n")
	}

	if len(result.Features) > 0 {
		sb.WriteString("Features: ")
		sb.WriteString(strings.Join(result.Features, ", "))
		sb.WriteString("\n")
	}

	if len(result.Warnings) > 0 {
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warning))
		}
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}
