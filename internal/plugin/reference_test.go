package plugin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trelliskit/cli/internal/source"
)

const pluginSource = `package reviews

import "github.com/trelliskit/trellis"

type ReviewsPlugin struct{}

func (p ReviewsPlugin) Init(options trellis.InitOptions) trellis.Registration {
	return trellis.Registration{Plugin: p}
}
`

func TestNewReference(t *testing.T) {
	proj := source.NewProject()
	f, err := proj.AddTemplate(filepath.Join(t.TempDir(), "reviews_plugin.go"), []byte(pluginSource))
	require.NoError(t, err)

	names := NewNameContext("reviews")
	ref, err := NewReference(names, "src/plugins/reviews", "example.com/shop/src/plugins/reviews", proj, f)
	require.NoError(t, err)

	assert.Equal(t, "ReviewsPlugin", ref.Name())
	assert.Equal(t, "src/plugins/reviews", ref.Dir)
	assert.Same(t, proj, ref.Project())
	assert.Same(t, f, ref.File())
}

func TestNewReferenceMissingDeclaration(t *testing.T) {
	proj := source.NewProject()
	f, err := proj.AddTemplate(filepath.Join(t.TempDir(), "empty.go"), []byte("package reviews\n"))
	require.NoError(t, err)

	_, err = NewReference(NewNameContext("reviews"), "", "", proj, f)
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrDeclarationNotFound)
}

func TestReferenceNameTracksRename(t *testing.T) {
	proj := source.NewProject()
	f, err := proj.AddTemplate(filepath.Join(t.TempDir(), "reviews_plugin.go"), []byte(pluginSource))
	require.NoError(t, err)

	ref, err := NewReference(NewNameContext("reviews"), "", "", proj, f)
	require.NoError(t, err)

	proj.RenameIdent("ReviewsPlugin", "RenamedPlugin")
	assert.Equal(t, "RenamedPlugin", ref.Name(), "the reference reads the declaration, not a cached string")
}
