package templates

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseGo(t *testing.T, name string, src []byte) {
	t.Helper()
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, name, src, 0)
	require.NoError(t, err, "rendered %s is not valid Go:\n%s", name, src)
}

func TestRenderFeatureEntity(t *testing.T) {
	r := NewRenderer(TemplateData{PackageName: "userreviews", EntityType: "Review"})

	out, err := r.RenderFeature("entity.go")
	require.NoError(t, err)

	assert.Contains(t, string(out), "package userreviews")
	assert.Contains(t, string(out), "type Review struct")
	assert.Contains(t, string(out), "trellis.EntityBase")
	parseGo(t, "entity.go", out)
}

func TestRenderFeatureService(t *testing.T) {
	r := NewRenderer(TemplateData{PackageName: "userreviews", ServiceType: "ReviewService"})

	out, err := r.RenderFeature("service.go")
	require.NoError(t, err)

	assert.Contains(t, string(out), "type ReviewService struct")
	assert.Contains(t, string(out), "func NewReviewService(")
	parseGo(t, "service.go", out)
}

func TestRenderFeatureUIExtensions(t *testing.T) {
	r := NewRenderer(TemplateData{PackageName: "userreviews", PluginBase: "user-reviews"})

	out, err := r.RenderFeature("ui_extensions.go")
	require.NoError(t, err)

	assert.Contains(t, string(out), "var pluginUI = trellis.UIExtension{")
	assert.Contains(t, string(out), `ID:        "user-reviews"`)
	parseGo(t, "ui_extensions.go", out)
}

func TestRenderFeatureCodegenIsValidYAML(t *testing.T) {
	r := NewRenderer(TemplateData{PackageName: "userreviews", PluginBase: "user-reviews"})

	out, err := r.RenderFeature("codegen.yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "user-reviews", doc["plugin"])
	assert.Equal(t, "userreviews", doc["package"])
}

func TestRenderFeatureUnknown(t *testing.T) {
	r := NewRenderer(TemplateData{})
	_, err := r.RenderFeature("nope.go")
	assert.Error(t, err)
}

func TestRenderFileBadTemplate(t *testing.T) {
	r := NewRenderer(TemplateData{})
	_, err := r.RenderFile("broken", []byte("{{ .Unclosed"))
	assert.Error(t, err)
}
