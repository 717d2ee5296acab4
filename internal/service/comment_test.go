package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/domain"
	apperrors "github.com/classroomhub/hub-server/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestCommentService(t *testing.T) (*CommentService, *memStore) {
	t.Helper()
	st := newMemStore()
	return NewCommentService(st, nil, comment.DefaultEmoji(), testLogger()), st
}

func TestCreateNormalizesLegacyMarkersAndTags(t *testing.T) {
	svc, _ := newTestCommentService(t)

	created, err := svc.Create(context.Background(), CreateRequest{
		Text: "{Name} always does {hishertheir} best.",
		Tags: []string{"level:G, category:Responsibility, level:g"},
	})
	require.NoError(t, err)

	assert.Equal(t, "{{First}} always does {{their}} best.", created.Text)
	// CSV split plus case-insensitive dedupe.
	assert.Equal(t, []string{"level:G", "category:Responsibility"}, created.Tags)
	assert.Equal(t, "G", created.Level)
	assert.Equal(t, "🟡", created.Emoji)
	assert.Equal(t, []string{"responsibility"}, created.Categories)
}

func TestCreateCategoryFieldBecomesTag(t *testing.T) {
	svc, _ := newTestCommentService(t)

	created, err := svc.Create(context.Background(), CreateRequest{
		Text:     "{{First}} settles into work quickly.",
		Category: "Self Regulation",
	})
	require.NoError(t, err)

	assert.Contains(t, created.Tags, "category:self-regulation")
	assert.Equal(t, []string{"self-regulation"}, created.Categories)
}

func TestCreateRequiresText(t *testing.T) {
	svc, _ := newTestCommentService(t)

	_, err := svc.Create(context.Background(), CreateRequest{Text: "   "})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}

func TestCreateLinksDefaultTenant(t *testing.T) {
	svc, st := newTestCommentService(t)

	created, err := svc.Create(context.Background(), CreateRequest{Text: "{{First}} participates actively."})
	require.NoError(t, err)

	stored, err := st.GetTemplate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "tenant-test", stored.TenantID)
}

func TestCreateWithoutTenantStorage(t *testing.T) {
	st := newMemStore()
	st.noTenants = true
	svc := NewCommentService(st, nil, comment.DefaultEmoji(), testLogger())

	created, err := svc.Create(context.Background(), CreateRequest{Text: "{{First}} shows initiative."})
	require.NoError(t, err)

	stored, err := st.GetTemplate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TenantID)
}

func TestListFilters(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Text: "{{First}} completes homework on time.", Tags: []string{"level:G"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Text: "{{First}} requires frequent reminders.", Tags: []string{"level:NS"}})
	require.NoError(t, err)

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byLevel, err := svc.List(ctx, ListFilter{Level: "g"})
	require.NoError(t, err)
	require.Len(t, byLevel, 1)
	assert.Equal(t, "G", byLevel[0].Level)

	byQuery, err := svc.List(ctx, ListFilter{Query: "HOMEWORK"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Contains(t, byQuery[0].Text, "homework")
}

func TestDeleteUnknownIDIsAnError(t *testing.T) {
	svc, _ := newTestCommentService(t)

	err := svc.Delete(context.Background(), "tpl-missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestBySkillMatchesCreatedTemplate(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Text: "{{First}} consistently hands in homework on time.",
		Tags: []string{"level:G", "ls:Responsibility"},
	})
	require.NoError(t, err)

	matches, err := svc.BySkill(ctx, "Responsibility", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, created.ID, matches[0].ID)
	assert.Equal(t, "G", matches[0].Level)
	assert.Equal(t, "🟡", matches[0].Emoji)
}

func TestByCategorySortsNewestFirst(t *testing.T) {
	svc, st := newTestCommentService(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"tpl-1", "tpl-2", "tpl-3"} {
		require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
			ID:        id,
			Text:      "entry " + id,
			Tags:      []string{"category:collaboration"},
			CreatedAt: base,
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	matches, err := svc.ByCategory(ctx, "collaboration", "")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "tpl-3", matches[0].ID)
	assert.Equal(t, "tpl-1", matches[2].ID)
}

func TestByCategoryLevelFilter(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Text: "good entry", Tags: []string{"level:G", "category:organization"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Text: "exemplary entry", Tags: []string{"level:E", "category:organization"}})
	require.NoError(t, err)

	matches, err := svc.ByCategory(ctx, "organization", "E")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "E", matches[0].Level)
}

func TestSummarize(t *testing.T) {
	svc, _ := newTestCommentService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Text: "a", Tags: []string{"level:G", "category:responsibility", "category:organization"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Text: "b", Tags: []string{"level:G"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Text: "c"})
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.ByLevel["G"])
	assert.Equal(t, 1, summary.ByLevel["(none)"])
	// Multi-category templates count once per category.
	assert.Equal(t, 1, summary.ByCategory["responsibility"])
	assert.Equal(t, 1, summary.ByCategory["organization"])
}

func TestLevels(t *testing.T) {
	svc, _ := newTestCommentService(t)

	levels := svc.Levels()
	require.Len(t, levels, 6)
	assert.Equal(t, "E", levels[0].Level)
	assert.Equal(t, "🟢", levels[0].Emoji)
	assert.Equal(t, "END", levels[5].Level)
}
