package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/game"
	"github.com/osse101/Farmstead_Go/internal/weather"
)

var _ GameService = (*game.Controller)(nil)

// actionBody mirrors ActionResponse for decoding
type actionBody struct {
	Applied      bool             `json:"applied"`
	Code         string           `json:"code"`
	Message      string           `json:"message"`
	TurnAdvanced bool             `json:"turn_advanced"`
	Version      uint64           `json:"version"`
	Snapshot     *domain.Snapshot `json:"snapshot"`
}

func newTestGame(t *testing.T) *game.Controller {
	t.Helper()
	ctrl, err := game.NewController(catalog.MustDefault(), weather.NewSeededGenerator(1))
	require.NoError(t, err)
	return ctrl
}

func doJSON(t *testing.T, h http.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeAction(t *testing.T, w *httptest.ResponseRecorder) actionBody {
	t.Helper()
	var out actionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGameHandler_Snapshot(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandleSnapshot, "GET", "")
	require.Equal(t, http.StatusOK, w.Code)

	var s domain.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, uint64(1), s.Version)
	assert.Equal(t, domain.StartingCurrency, s.Resources.Currency)
	assert.Equal(t, domain.ActionsPerTurn, s.Resources.ActionsRemaining)
	assert.Len(t, s.Plots, 1)
}

func TestGameHandler_SnapshotAt(t *testing.T) {
	ctrl := newTestGame(t)
	h := NewGameHandler(ctrl)
	ctrl.CycleSeed(context.Background())

	tests := []struct {
		name     string
		version  string
		wantCode int
	}{
		{"first version", "1", http.StatusOK},
		{"current version", "2", http.StatusOK},
		{"unknown version", "99", http.StatusNotFound},
		{"not a number", "abc", http.StatusBadRequest},
		{"negative", "-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/game/snapshot/"+tt.version, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("version", tt.version)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			h.HandleSnapshotAt(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGameHandler_Plant(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"explicit plot", `{"plot_id":"plot_0"}`, http.StatusOK, ""},
		{"unknown plot", `{"plot_id":"plot_7"}`, http.StatusNotFound, "plot_not_found"},
		{"nearest plot out of reach", ``, http.StatusConflict, "no_nearby_plot"},
		{"unknown field", `{"plot":"plot_0"}`, http.StatusBadRequest, ""},
		{"malformed json", `{"plot_id":`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGameHandler(newTestGame(t))

			w := doJSON(t, h.HandlePlant, "POST", tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK || tt.wantErr != "" {
				body := decodeAction(t, w)
				assert.Equal(t, tt.wantCode == http.StatusOK, body.Applied)
				assert.Equal(t, tt.wantErr, body.Code)
				require.NotNil(t, body.Snapshot)
			}
		})
	}
}

func TestGameHandler_PlantTwiceConflicts(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandlePlant, "POST", `{"plot_id":"plot_0"}`)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeAction(t, w)
	assert.Equal(t, domain.StageSown, first.Snapshot.Plots[0].Stage)
	assert.Equal(t, 4, first.Snapshot.Resources.ActionsRemaining)

	w = doJSON(t, h.HandlePlant, "POST", `{"plot_id":"plot_0"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	second := decodeAction(t, w)
	assert.False(t, second.Applied)
	assert.Equal(t, first.Version, second.Version, "rejection keeps the version")
	assert.Equal(t, 4, second.Snapshot.Resources.ActionsRemaining, "rejection spends nothing")
}

func TestGameHandler_Advance(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandleAdvance, "POST", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeAction(t, w)
	assert.True(t, body.TurnAdvanced)
	assert.Equal(t, 2, body.Snapshot.Resources.Turn)
	assert.Equal(t, domain.ActionsPerTurn, body.Snapshot.Resources.ActionsRemaining)
}

func TestGameHandler_Move(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"walk right", `{"dx":1,"dy":0,"dt":0.5}`, http.StatusOK},
		{"missing dt", `{"dx":1}`, http.StatusBadRequest},
		{"dx out of range", `{"dx":4,"dt":0.1}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGameHandler(newTestGame(t))

			w := doJSON(t, h.HandleMove, "POST", tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}

	t.Run("position changes by speed times dt", func(t *testing.T) {
		h := NewGameHandler(newTestGame(t))

		w := doJSON(t, h.HandleMove, "POST", `{"dx":1,"dy":0,"dt":0.5}`)

		body := decodeAction(t, w)
		assert.InDelta(t, domain.PlayerStartX+domain.PlayerSpeed*0.5, body.Snapshot.Player.Position.X, 1e-9)
		assert.Equal(t, domain.ActionsPerTurn, body.Snapshot.Resources.ActionsRemaining, "moving is free")
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		h := NewGameHandler(newTestGame(t))

		w := doJSON(t, h.HandleMove, "POST", `{"dx":4,"dt":0.1}`)

		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Contains(t, resp.Fields, "dx")
	})
}

func TestGameHandler_Face(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandleFace, "POST", `{"facing":"left"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.FacingLeft, decodeAction(t, w).Snapshot.Player.Facing)

	w = doJSON(t, h.HandleFace, "POST", `{"facing":"up"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameHandler_SelectSeed(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandleSelectSeed, "POST", `{"seed_id":"corn_seed"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h.HandleSelectSeed, "POST", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameHandler_FillRejectedAwayFromRiver(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandleFill, "POST", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeAction(t, w)
	assert.False(t, body.Applied)
	assert.NotEmpty(t, body.Code)
	assert.NotEmpty(t, body.Message)
}

func TestGameHandler_Feed_NoHen(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandleFeed, "POST", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "hen_missing", decodeAction(t, w).Code)
}

func TestGameHandler_District(t *testing.T) {
	h := NewGameHandler(newTestGame(t))

	w := doJSON(t, h.HandleDistrict, "POST", `{"district":"nowhere"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "district_not_found", decodeAction(t, w).Code)

	w = doJSON(t, h.HandleDistrict, "POST", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameHandler_Reset(t *testing.T) {
	ctrl := newTestGame(t)
	h := NewGameHandler(ctrl)
	doJSON(t, h.HandlePlant, "POST", `{"plot_id":"plot_0"}`)

	w := doJSON(t, h.HandleReset, "POST", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeAction(t, w)
	assert.Equal(t, domain.StageEmpty, body.Snapshot.Plots[0].Stage)
	assert.Equal(t, domain.StartingTurn, body.Snapshot.Resources.Turn)
	assert.Greater(t, body.Snapshot.Version, uint64(2), "versions keep increasing across resets")
}

func TestRejectionStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, rejectionStatus(domain.ErrPlotNotFound))
	assert.Equal(t, http.StatusNotFound, rejectionStatus(domain.ErrItemNotFound))
	assert.Equal(t, http.StatusBadRequest, rejectionStatus(domain.ErrInvalidInput))
	assert.Equal(t, http.StatusConflict, rejectionStatus(domain.ErrInsufficientFunds))
	assert.Equal(t, http.StatusConflict, rejectionStatus(domain.ErrNoActionsRemaining))
}
