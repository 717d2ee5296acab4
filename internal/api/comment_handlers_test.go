package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classroomhub/hub-server/internal/service"
)

func TestCreateAndFetchBySkill(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments", map[string]any{
		"text": "{{First}} consistently hands in homework on time.",
		"tags": []string{"level:G", "ls:Responsibility"},
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created service.TemplateView
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "G", created.Level)
	assert.Equal(t, "🟡", created.Emoji)
	assert.Equal(t, []string{"responsibility"}, created.Categories)

	resp = ts.api.Get("/api/v1/comments/by-skill?skill=Responsibility")
	require.Equal(t, http.StatusOK, resp.Code)

	var list CommentListResponse
	decodeBody(t, resp, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Templates[0].ID)
	assert.Equal(t, "🟡", list.Templates[0].Emoji)

	resp = ts.api.Get("/api/v1/comments/by-category?category=responsibility&level=G")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &list)
	assert.Equal(t, 1, list.Total)
}

func TestCreateNormalizesLegacyMarkers(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments", map[string]any{
		"text": "{Name} always tries {hishertheir} best.",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created service.TemplateView
	decodeBody(t, resp, &created)
	assert.Equal(t, "{{First}} always tries {{their}} best.", created.Text)
}

func TestCreateRejectsEmptyText(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments", map[string]any{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Delete("/api/v1/comments/tpl-missing")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestDeleteExistingTemplate(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments", map[string]any{"text": "{{First}} is kind."})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created service.TemplateView
	decodeBody(t, resp, &created)

	resp = ts.api.Delete("/api/v1/comments/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/comments/" + created.ID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListFiltersByLevelAndQuery(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	for _, body := range []map[string]any{
		{"text": "{{First}} completes homework on time.", "tags": []string{"level:G"}},
		{"text": "{{First}} requires frequent reminders.", "tags": []string{"level:NS"}},
	} {
		resp := ts.api.Post("/api/v1/comments", body)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := ts.api.Get("/api/v1/comments?level=G")
	require.Equal(t, http.StatusOK, resp.Code)
	var list CommentListResponse
	decodeBody(t, resp, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "G", list.Templates[0].Level)

	resp = ts.api.Get("/api/v1/comments?q=homework")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &list)
	assert.Equal(t, 1, list.Total)
}

func TestLevelsEndpoint(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Get("/api/v1/comments/levels")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Levels []string          `json:"levels"`
		Emoji  map[string]string `json:"emoji"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Levels, 6)
	assert.Equal(t, "E", body.Levels[0])
	assert.Equal(t, "🟢", body.Emoji["E"])
	assert.Equal(t, "🔴", body.Emoji["NS"])
}

func TestSeedOntarioIsIdempotentOverHTTP(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments/seed/ontario-ls")
	require.Equal(t, http.StatusOK, resp.Code)

	var first service.SeedResult
	decodeBody(t, resp, &first)
	assert.Greater(t, first.Created, 120)
	assert.Zero(t, first.Failed)

	resp = ts.api.Post("/api/v1/comments/seed/ontario-ls")
	require.Equal(t, http.StatusOK, resp.Code)

	var second service.SeedResult
	decodeBody(t, resp, &second)
	assert.Zero(t, second.Created)
	assert.Equal(t, first.Created, second.Skipped)
}

func TestSummaryAfterSeed(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments/seed/ontario-ls")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/comments/summary")
	require.Equal(t, http.StatusOK, resp.Code)

	var summary service.Summary
	decodeBody(t, resp, &summary)
	assert.Greater(t, summary.Total, 120)
	assert.NotZero(t, summary.ByLevel["G"])
	assert.NotZero(t, summary.ByCategory["self-regulation"])
}

func TestNextStepsAndOpenersAfterSeed(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments/seed/ontario-ls")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/comments/next-steps")
	require.Equal(t, http.StatusOK, resp.Code)
	var list CommentListResponse
	decodeBody(t, resp, &list)
	assert.NotZero(t, list.Total)
	for _, tpl := range list.Templates {
		assert.True(t, tpl.NextSteps)
	}

	resp = ts.api.Get("/api/v1/comments/openers")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &list)
	assert.NotZero(t, list.Total)
	for _, tpl := range list.Templates {
		assert.True(t, tpl.Opener)
	}
}

func TestSearchAfterSeed(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments/seed/ontario-ls")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/comments/search?q=homework&limit=5")
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		Total uint64 `json:"total"`
		Hits  []struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"hits"`
	}
	decodeBody(t, resp, &result)
	assert.NotZero(t, result.Total)
	assert.NotEmpty(t, result.Hits)
}

func TestBackfillEndpoints(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Post("/api/v1/comments", map[string]any{
		"text": "{{First}} consistently shows respect for classroom materials.",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Post("/api/v1/comments/backfill-levels")
	require.Equal(t, http.StatusOK, resp.Code)

	var result service.BackfillResult
	decodeBody(t, resp, &result)
	assert.Equal(t, 1, result.Updated)

	resp = ts.api.Post("/api/v1/comments/backfill-ontario-tags")
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &result)
	assert.Zero(t, result.Failed)
}
