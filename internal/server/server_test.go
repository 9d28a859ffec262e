package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/game"
	"github.com/osse101/Farmstead_Go/internal/profile"
	"github.com/osse101/Farmstead_Go/internal/sse"
	"github.com/osse101/Farmstead_Go/internal/weather"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctrl, err := game.NewController(catalog.MustDefault(), weather.NewSeededGenerator(7))
	require.NoError(t, err)

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	profiles := profile.NewService(profile.NewMemoryRepository(), 16, time.Minute)
	srv := NewServer(Options{
		Port:        0,
		APIKey:      testAPIKey,
		ServiceName: "farmstead",
		Version:     "test",
	}, nil, ctrl, profiles, hub)
	return srv.Handler()
}

func send(t *testing.T, h http.Handler, method, path, body string, withKey bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if withKey {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"healthz", "GET", "/healthz", "", http.StatusOK},
		{"readyz without database", "GET", "/readyz", "", http.StatusOK},
		{"version", "GET", "/version", "", http.StatusOK},
		{"metrics", "GET", "/metrics", "", http.StatusOK},
		{"swagger doc", "GET", "/swagger/doc.json", "", http.StatusOK},
		{"snapshot", "GET", "/api/v1/game/snapshot", "", http.StatusOK},
		{"snapshot by version", "GET", "/api/v1/game/snapshot/1", "", http.StatusOK},
		{"catalog", "GET", "/api/v1/shop/catalog", "", http.StatusOK},
		{"profile", "GET", "/api/v1/profile", "", http.StatusOK},
		{"face", "POST", "/api/v1/game/face", `{"facing":"left"}`, http.StatusOK},
		{"cycle seed", "POST", "/api/v1/game/cycle-seed", "", http.StatusOK},
		{"buy tank", "POST", "/api/v1/shop/buy", `{"item_id":"tank"}`, http.StatusOK},
		{"update profile", "PUT", "/api/v1/profile", `{"display_name":"Marisol"}`, http.StatusOK},
		{"unknown route", "GET", "/api/v1/nope", "", http.StatusNotFound},
		{"wrong method", "GET", "/api/v1/game/plant", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(t, h, tt.method, tt.path, tt.body, true)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_MutationsRequireKey(t *testing.T) {
	h := newTestServer(t)

	rec := send(t, h, "POST", "/api/v1/game/advance", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Nothing changed
	rec = send(t, h, "GET", "/api/v1/game/snapshot", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var s domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, domain.StartingTurn, s.Resources.Turn)
	assert.Equal(t, uint64(1), s.Version)
}

func TestServer_PlayThroughTurn(t *testing.T) {
	h := newTestServer(t)

	rec := send(t, h, "POST", "/api/v1/game/plant", `{"plot_id":"plot_0"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = send(t, h, "POST", "/api/v1/game/advance", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = send(t, h, "GET", "/api/v1/game/snapshot", "", false)
	var s domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 2, s.Resources.Turn)
	assert.Equal(t, domain.ActionsPerTurn, s.Resources.ActionsRemaining)
	assert.Equal(t, uint64(3), s.Version)

	rec = send(t, h, "GET", "/api/v1/game/snapshot/2", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var planted domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &planted))
	assert.Equal(t, domain.StageSown, planted.Plots[0].Stage)
	assert.Equal(t, 4, planted.Resources.ActionsRemaining)
}

func TestServer_SecurityHeadersOnAPI(t *testing.T) {
	h := newTestServer(t)

	rec := send(t, h, "GET", "/api/v1/game/snapshot", "", false)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
