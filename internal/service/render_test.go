package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classroomhub/hub-server/internal/domain"
	apperrors "github.com/classroomhub/hub-server/internal/errors"
)

func newTestRenderService(t *testing.T) (*RenderService, *memStore) {
	t.Helper()
	st := newMemStore()
	return NewRenderService(st, testLogger()), st
}

func maya() domain.Student {
	return domain.Student{FirstName: "maya", LastName: "Singh", Grade: "5", Pronouns: "she/her/her"}
}

func TestRenderStoredTemplate(t *testing.T) {
	svc, st := newTestRenderService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-1", Text: "{{First}} completes {{their}} homework in {{subject_or_class}}.",
		CreatedAt: now, UpdatedAt: now,
	}))

	got, err := svc.Render(ctx, RenderInput{
		TemplateID:     "tpl-1",
		Student:        maya(),
		SubjectOrClass: "Mathematics",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maya completes her homework in Mathematics.", got)
}

func TestRenderAdHocTextWithLegacyMarkers(t *testing.T) {
	svc, _ := newTestRenderService(t)

	got, err := svc.Render(context.Background(), RenderInput{
		Text:    "{Name} tries {hishertheir} best.",
		Student: maya(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maya tries her best.", got)
}

func TestRenderMissingKeysResolveEmpty(t *testing.T) {
	svc, _ := newTestRenderService(t)

	got, err := svc.Render(context.Background(), RenderInput{
		Text:    "{{First}} likes {{favourite_color}}.",
		Student: maya(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maya likes .", got)
	assert.NotContains(t, got, "{{")
}

func TestRenderInputValidation(t *testing.T) {
	svc, st := newTestRenderService(t)
	ctx := context.Background()

	_, err := svc.Render(ctx, RenderInput{})
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))

	now := time.Now().UTC()
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{ID: "tpl-1", Text: "x", CreatedAt: now, UpdatedAt: now}))
	_, err = svc.Render(ctx, RenderInput{TemplateID: "tpl-1", Text: "also text"})
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))

	_, err = svc.Render(ctx, RenderInput{TemplateID: "tpl-missing"})
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestComposeJoinsPartsInCallerOrder(t *testing.T) {
	svc, st := newTestRenderService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-opener", Text: "{{First}} has had a strong term.", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, st.CreateTemplate(ctx, &domain.Template{
		ID: "tpl-closer", Text: "[X] Best of luck next year, {{First}}!", CreatedAt: now, UpdatedAt: now,
	}))

	got, err := svc.Compose(ctx, ComposeInput{
		Parts: []ComposePart{
			{TemplateID: "tpl-opener"},
			{Text: "{{They}} shares ideas readily."},
			{Text: "   "},
			{TemplateID: "tpl-closer"},
		},
		Student: maya(),
	})
	require.NoError(t, err)
	// Empty parts are dropped, leading markers are stripped, order holds.
	assert.Equal(t, "Maya has had a strong term. She shares ideas readily. Best of luck next year, Maya!", got)
}

func TestComposeRequiresParts(t *testing.T) {
	svc, _ := newTestRenderService(t)
	_, err := svc.Compose(context.Background(), ComposeInput{})
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}
