package entity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/features"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/plugin"
	"github.com/trelliskit/cli/internal/scaffold"
	"github.com/trelliskit/cli/internal/testutil"
)

func newContext(t *testing.T, name string) *features.Context {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	ref, err := scaffold.Generate(plugin.GenerateOptions{Name: name, PluginDir: dir})
	require.NoError(t, err)
	return &features.Context{Ref: ref, Result: &output.GenerationResult{}}
}

func TestRunUsesSeed(t *testing.T) {
	ctx := newContext(t, "reviews")
	ctx.EntityNameSeed = "review item"

	require.NoError(t, New().Run(ctx))

	src := testutil.ReadFile(t, filepath.Join(ctx.Ref.Dir, "entity_review_item.go"))
	assert.Contains(t, src, "package reviews")
	assert.Contains(t, src, "type ReviewItem struct")
	assert.Contains(t, src, "trellis.EntityBase")

	pluginSrc := testutil.ReadFile(t, ctx.Ref.File().Path())
	assert.Contains(t, pluginSrc, "ReviewItem{}")
}

func TestRunDefaultsToPluginBase(t *testing.T) {
	ctx := newContext(t, "user-reviews")

	require.NoError(t, New().Run(ctx))

	src := testutil.ReadFile(t, filepath.Join(ctx.Ref.Dir, "entity_user_reviews.go"))
	assert.Contains(t, src, "package userreviews")
	assert.Contains(t, src, "type UserReviews struct")
}

func TestRunRecordsResult(t *testing.T) {
	ctx := newContext(t, "reviews")
	ctx.EntityNameSeed = "Review"

	require.NoError(t, New().Run(ctx))

	require.Len(t, ctx.Result.Files, 1)
	assert.Equal(t, output.StatusCreated, ctx.Result.Files[0].Status)
	assert.Contains(t, ctx.Result.Features, "entity")
}

func TestRunSecondEntity(t *testing.T) {
	ctx := newContext(t, "reviews")

	ctx.EntityNameSeed = "Review"
	require.NoError(t, New().Run(ctx))
	ctx.EntityNameSeed = "Vote"
	require.NoError(t, New().Run(ctx))

	pluginSrc := testutil.ReadFile(t, ctx.Ref.File().Path())
	assert.Contains(t, pluginSrc, "Review{}")
	assert.Contains(t, pluginSrc, "Vote{}")
}

func TestRunRejectsExistingFile(t *testing.T) {
	ctx := newContext(t, "reviews")
	ctx.EntityNameSeed = "Review"

	require.NoError(t, New().Run(ctx))
	err := New().Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "already exists")
}
