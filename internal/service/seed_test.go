package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/domain"
)

func newTestSeedService(t *testing.T) (*SeedService, *memStore) {
	t.Helper()
	st := newMemStore()
	comments := NewCommentService(st, nil, comment.DefaultEmoji(), testLogger())
	return NewSeedService(st, comments, testLogger()), st
}

func TestSeedOntarioIsIdempotent(t *testing.T) {
	svc, st := newTestSeedService(t)
	ctx := context.Background()

	first, err := svc.SeedOntario(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(comment.OntarioSeeds()), first.Created)
	assert.Zero(t, first.Skipped)
	assert.Zero(t, first.Failed)

	second, err := svc.SeedOntario(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, len(comment.OntarioSeeds()), second.Skipped)

	all, err := st.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(comment.OntarioSeeds()))
}

func TestSeedOntarioSkipsByTextNotTags(t *testing.T) {
	svc, st := newTestSeedService(t)
	ctx := context.Background()

	// A pre-normalization row with the same text but no tags still blocks
	// reseeding that entry.
	seed := comment.OntarioSeeds()[0]
	now := time.Now().UTC()
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-old", Text: seed.Text, CreatedAt: now, UpdatedAt: now,
	}))

	result, err := svc.SeedOntario(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(comment.OntarioSeeds())-1, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestBackfillLevelsInfersOnlyMissing(t *testing.T) {
	svc, st := newTestSeedService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	// Explicit level, text that would infer differently. Must not change.
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-explicit", Text: "{{First}} consistently completes all tasks.",
		Level: "E", CreatedAt: now, UpdatedAt: now,
	}))
	// No level, inferable from text.
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-infer", Text: "{{First}} consistently completes all tasks.",
		CreatedAt: now, UpdatedAt: now,
	}))
	// No level, nothing to infer.
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-plain", Text: "{{First}} enjoys science experiments.",
		CreatedAt: now, UpdatedAt: now,
	}))

	result, err := svc.BackfillLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 2, result.Skipped)

	explicit, err := st.GetTemplate(ctx, "tpl-explicit")
	require.NoError(t, err)
	assert.Equal(t, "E", explicit.Level)

	inferred, err := st.GetTemplate(ctx, "tpl-infer")
	require.NoError(t, err)
	assert.Equal(t, "G", inferred.Level)
	assert.Contains(t, inferred.Tags, "level:G")

	plain, err := st.GetTemplate(ctx, "tpl-plain")
	require.NoError(t, err)
	assert.Empty(t, plain.Level)
}

func TestBackfillOntarioTags(t *testing.T) {
	svc, st := newTestSeedService(t)
	ctx := context.Background()

	seed := comment.OntarioSeeds()[0]
	now := time.Now().UTC()
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-old", Text: seed.Text, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-custom", Text: "{{First}} built a volcano model.", CreatedAt: now, UpdatedAt: now,
	}))

	result, err := svc.BackfillOntarioTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	updated, err := st.GetTemplate(ctx, "tpl-old")
	require.NoError(t, err)
	assert.Contains(t, updated.Tags, "jurisdiction:ontario")
	assert.Contains(t, updated.Tags, "category:"+seed.Category)
	assert.Equal(t, string(seed.Level), updated.Level)

	// Non-seed rows are untouched.
	custom, err := st.GetTemplate(ctx, "tpl-custom")
	require.NoError(t, err)
	assert.Empty(t, custom.Tags)

	// A second run finds nothing left to do.
	again, err := svc.BackfillOntarioTags(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Updated)
}
