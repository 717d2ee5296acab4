package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classroomhub/hub-server/internal/ai"
	"github.com/classroomhub/hub-server/internal/comment"
	"github.com/classroomhub/hub-server/internal/config"
	"github.com/classroomhub/hub-server/internal/search"
	"github.com/classroomhub/hub-server/internal/service"
	"github.com/classroomhub/hub-server/internal/settings"
	"github.com/classroomhub/hub-server/internal/store/sqlite"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api humatest.TestAPI
}

type testOptions struct {
	generator ai.Generator
	cfg       *config.Config
}

func defaultTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Name: "Classroom Hub Test"},
		Assist: config.AssistConfig{RatePerMinute: 600, RateBurst: 100},
	}
}

func setupTestServer(t *testing.T, opts testOptions) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	st, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	idx, err := search.NewIndex(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	if opts.generator == nil {
		opts.generator = ai.Disabled{}
	}
	if opts.cfg == nil {
		opts.cfg = defaultTestConfig()
	}

	commentService := service.NewCommentService(st, idx, comment.DefaultEmoji(), logger)
	services := &Services{
		Comment:  commentService,
		Seed:     service.NewSeedService(st, commentService, logger),
		Render:   service.NewRenderService(st, logger),
		Assist:   service.NewAssistService(opts.generator, logger),
		Settings: service.NewSettingsService(&settings.StaticProvider{}),
	}

	srv := NewServer(opts.cfg, services, logger)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, api: humatest.Wrap(t, srv.api)}
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), out))
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
}

func TestGetSettingsReturnsOntarioDefaults(t *testing.T) {
	ts := setupTestServer(t, testOptions{})

	resp := ts.api.Get("/api/v1/settings")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Jurisdiction string `json:"jurisdiction"`
		LSCategories []struct {
			ID string `json:"id"`
		} `json:"lsCategories"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "ontario", body.Jurisdiction)
	assert.Len(t, body.LSCategories, 7)
}
