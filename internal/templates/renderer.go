package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// Renderer renders feature templates with a fixed data set.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a renderer for the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFeature renders the named feature template and returns the content.
func (r *Renderer) RenderFeature(name string) ([]byte, error) {
	content, err := Feature(name)
	if err != nil {
		return nil, err
	}
	return r.RenderFile(name, content)
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
