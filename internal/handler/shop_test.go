package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

func TestShopHandler_Catalog(t *testing.T) {
	h := NewShopHandler(newTestGame(t))

	req := httptest.NewRequest("GET", "/api/v1/shop/catalog", nil)
	w := httptest.NewRecorder()
	h.HandleCatalog(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StartingCurrency, resp.Currency)
	assert.NotEmpty(t, resp.Districts)
	assert.NotEmpty(t, resp.Listings)

	ids := make(map[string]bool)
	for _, l := range resp.Listings {
		ids[l.ItemID] = true
	}
	assert.True(t, ids[domain.ItemPlot])
	assert.True(t, ids[domain.ItemTank])
	assert.True(t, ids[domain.ItemCornSeed])
}

func TestShopHandler_Catalog_District(t *testing.T) {
	h := NewShopHandler(newTestGame(t))

	req := httptest.NewRequest("GET", "/api/v1/shop/catalog?district=atlantis", nil)
	w := httptest.NewRecorder()
	h.HandleCatalog(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShopHandler_Buy(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantCode     int
		wantCurrency int
	}{
		{"buy plot", `{"item_id":"plot"}`, http.StatusOK, 47},
		{"buy tank", `{"item_id":"tank"}`, http.StatusOK, 25},
		{"pet too expensive", `{"item_id":"pet"}`, http.StatusConflict, 50},
		{"unknown item", `{"item_id":"banana"}`, http.StatusNotFound, 50},
		{"missing item", `{}`, http.StatusBadRequest, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewShopHandler(newTestGame(t))

			w := doJSON(t, h.HandleBuy, "POST", tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCurrency >= 0 {
				body := decodeAction(t, w)
				assert.Equal(t, tt.wantCurrency, body.Snapshot.Resources.Currency)
				assert.Equal(t, domain.ActionsPerTurn, body.Snapshot.Resources.ActionsRemaining, "shopping is free")
			}
		})
	}
}

func TestShopHandler_Sell(t *testing.T) {
	h := NewShopHandler(newTestGame(t))

	// Crop stacks start empty
	w := doJSON(t, h.HandleSell, "POST", `{"item_id":"corn"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "insufficient_quantity", decodeAction(t, w).Code)

	w = doJSON(t, h.HandleSellAll, "POST", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.StartingCurrency, decodeAction(t, w).Snapshot.Resources.Currency)
}
