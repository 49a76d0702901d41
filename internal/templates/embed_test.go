package templates

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkeletonsParseAsGo(t *testing.T) {
	for _, name := range Skeletons() {
		t.Run(name, func(t *testing.T) {
			content, err := Skeleton(name)
			require.NoError(t, err)

			fset := token.NewFileSet()
			file, err := parser.ParseFile(fset, name, content, parser.ParseComments)
			require.NoError(t, err)
			assert.Equal(t, ScaffoldPackage, file.Name.Name)
		})
	}
}

func TestSkeletonWellKnownIdentifiers(t *testing.T) {
	pluginSrc, err := Skeleton(SkeletonPlugin)
	require.NoError(t, err)
	assert.Contains(t, string(pluginSrc), "type "+ScaffoldTypeName+" struct")
	assert.Contains(t, string(pluginSrc), "pluginEntities")
	assert.Contains(t, string(pluginSrc), "pluginServices")

	constSrc, err := Skeleton(SkeletonConstants)
	require.NoError(t, err)
	assert.Contains(t, string(constSrc), ScaffoldOptionsName)
	assert.Contains(t, string(constSrc), "const "+ScaffoldLoggerCtx)

	typesSrc, err := Skeleton(SkeletonTypes)
	require.NoError(t, err)
	assert.Contains(t, string(typesSrc), "type InitOptions struct")
}

func TestSkeletonUnknown(t *testing.T) {
	_, err := Skeleton("missing.go")
	assert.Error(t, err)
}

func TestFeatures(t *testing.T) {
	names, err := Features()
	require.NoError(t, err)
	assert.Equal(t, []string{"codegen.yaml", "entity.go", "service.go", "ui_extensions.go"}, names)
}
