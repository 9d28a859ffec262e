package handler

import (
	"net/http"

	"github.com/osse101/Farmstead_Go/internal/economy"
)

// QueryParamDistrict selects the district for price adjustments
const QueryParamDistrict = "district"

// ShopHandler serves the shop endpoints. Shopping never spends actions.
type ShopHandler struct {
	svc GameService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(svc GameService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

// ShopItemRequest names the item to buy or sell
type ShopItemRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// CatalogResponse lists the shop offers for a district
type CatalogResponse struct {
	District  string            `json:"district,omitempty"`
	Districts []string          `json:"districts"`
	Currency  int               `json:"currency"`
	Listings  []economy.Listing `json:"listings"`
}

// HandleCatalog lists every offer, defaulting to the snapshot's district
// @Summary List shop offers
// @Description Lists every offer with base and district-adjusted prices
// @Tags shop
// @Produce json
// @Param district query string false "District name"
// @Success 200 {object} CatalogResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/shop/catalog [get]
func (h *ShopHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	s := h.svc.Snapshot()
	district := GetOptionalQueryParam(r, QueryParamDistrict, s.District)

	listings, err := h.svc.Listings(district)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCatalogFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, CatalogResponse{
		District:  district,
		Districts: h.svc.Catalog().Districts(),
		Currency:  s.Resources.Currency,
		Listings:  listings,
	})
}

// HandleBuy purchases one unit of an item, plot, tank or decoration
// @Summary Buy an item
// @Description Purchases one seed, plot, tank or decoration at the base price
// @Tags shop
// @Accept json
// @Produce json
// @Param request body ShopItemRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/shop/buy [post]
func (h *ShopHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req ShopItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
		return
	}
	respondResult(w, r, h.svc, h.svc.Buy(r.Context(), req.ItemID))
}

// HandleSell sells a whole stack
// @Summary Sell a stack
// @Description Sells a whole inventory stack
// @Tags shop
// @Accept json
// @Produce json
// @Param request body ShopItemRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/shop/sell [post]
func (h *ShopHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req ShopItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
		return
	}
	respondResult(w, r, h.svc, h.svc.Sell(r.Context(), req.ItemID))
}

// HandleSellAll sells every sellable stack
// @Summary Sell everything
// @Description Sells every sellable stack
// @Tags shop
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/shop/sell-all [post]
func (h *ShopHandler) HandleSellAll(w http.ResponseWriter, r *http.Request) {
	respondResult(w, r, h.svc, h.svc.SellAll(r.Context()))
}
