package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/economy"
	"github.com/osse101/Farmstead_Go/internal/game"
	"github.com/osse101/Farmstead_Go/internal/logger"
)

// GameService is the simulation surface the HTTP adapter drives
type GameService interface {
	Snapshot() *domain.Snapshot
	SnapshotAt(version uint64) (*domain.Snapshot, bool)
	Catalog() *catalog.Catalog

	Plant(ctx context.Context, plotID string) game.Result
	Harvest(ctx context.Context, plotID string) game.Result
	Irrigate(ctx context.Context, plotID string) game.Result
	FillFromRiver(ctx context.Context) game.Result
	Feed(ctx context.Context, targetID string) game.Result
	AdvanceTurn(ctx context.Context) game.Result

	Move(ctx context.Context, dx, dy, dt float64) game.Result
	Face(ctx context.Context, dir domain.Facing) game.Result
	SelectSeed(ctx context.Context, seedID string) game.Result
	CycleSeed(ctx context.Context) game.Result
	SelectDistrict(ctx context.Context, name string) game.Result
	Reset(ctx context.Context) game.Result

	Buy(ctx context.Context, itemID string) game.Result
	Sell(ctx context.Context, itemID string) game.Result
	SellAll(ctx context.Context) game.Result
	Listings(district string) ([]economy.Listing, error)
}

// GameHandler serves the turn and movement endpoints
type GameHandler struct {
	svc GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(svc GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

// PlotRequest targets a plot; an empty plot_id means the nearest one
type PlotRequest struct {
	PlotID string `json:"plot_id" validate:"omitempty,max=16,excludesall=\x00\n\r\t"`
}

// FeedRequest targets a decoration; empty means the hen
type FeedRequest struct {
	TargetID string `json:"target_id" validate:"omitempty,max=32,excludesall=\x00\n\r\t"`
}

// MoveRequest walks the player along a direction for dt seconds
type MoveRequest struct {
	DX float64 `json:"dx" validate:"gte=-1,lte=1"`
	DY float64 `json:"dy" validate:"gte=-1,lte=1"`
	DT float64 `json:"dt" validate:"gt=0,lte=1"`
}

// FaceRequest turns the player sprite
type FaceRequest struct {
	Facing string `json:"facing" validate:"required,facing"`
}

// SelectSeedRequest chooses the active seed
type SelectSeedRequest struct {
	SeedID string `json:"seed_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// DistrictRequest chooses the displayed market district
type DistrictRequest struct {
	District string `json:"district" validate:"required,max=64"`
}

// ActionResponse reports an operation outcome together with the snapshot it left behind
type ActionResponse struct {
	game.Result
	Snapshot *domain.Snapshot `json:"snapshot"`
}

// HandleSnapshot returns the current snapshot
// @Summary Get current snapshot
// @Description Returns the latest immutable simulation snapshot
// @Tags game
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /api/v1/game/snapshot [get]
func (h *GameHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Snapshot())
}

// HandleSnapshotAt returns a recent snapshot by version
// @Summary Get snapshot by version
// @Description Returns a recent snapshot from the history ring
// @Tags game
// @Produce json
// @Param version path int true "Snapshot version"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/game/snapshot/{version} [get]
func (h *GameHandler) HandleSnapshotAt(w http.ResponseWriter, r *http.Request) {
	version, err := strconv.ParseUint(chi.URLParam(r, "version"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidVersion)
		return
	}

	s, ok := h.svc.SnapshotAt(version)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgVersionNotFound)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

// HandlePlant sows the selected seed, or harvests a ripe plot
// @Summary Plant or harvest
// @Description Sows the selected seed in the target plot, or harvests it when ripe
// @Tags game
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/plant [post]
func (h *GameHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	handlePlotAction(w, r, "Plant", h.svc, h.svc.Plant)
}

// HandleHarvest collects a ripe plot
// @Summary Harvest a plot
// @Description Collects a ripe plot into the inventory
// @Tags game
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/harvest [post]
func (h *GameHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	handlePlotAction(w, r, "Harvest", h.svc, h.svc.Harvest)
}

// HandleIrrigate waters a plot from the tanks
// @Summary Irrigate a plot
// @Description Moves stored tank water onto a plot
// @Tags game
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/irrigate [post]
func (h *GameHandler) HandleIrrigate(w http.ResponseWriter, r *http.Request) {
	handlePlotAction(w, r, "Irrigate", h.svc, h.svc.Irrigate)
}

// HandleFill draws river water into a tank
// @Summary Fill a tank
// @Description Draws river water into the first tank with room
// @Tags game
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/fill [post]
func (h *GameHandler) HandleFill(w http.ResponseWriter, r *http.Request) {
	respondResult(w, r, h.svc, h.svc.FillFromRiver(r.Context()))
}

// HandleFeed feeds the selected seed to the hen
// @Summary Feed the hen
// @Description Feeds one unit of the selected seed to the hen for eggs
// @Tags game
// @Accept json
// @Produce json
// @Param request body FeedRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/feed [post]
func (h *GameHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	var req FeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed"); err != nil {
		return
	}
	respondResult(w, r, h.svc, h.svc.Feed(r.Context(), req.TargetID))
}

// HandleAdvance ends the turn
// @Summary End the turn
// @Description Runs the turn transition and rolls new weather
// @Tags game
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/advance [post]
func (h *GameHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	respondResult(w, r, h.svc, h.svc.AdvanceTurn(r.Context()))
}

// HandleMove walks the player
// @Summary Move the player
// @Description Walks the player along a direction for dt seconds
// @Tags game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/move [post]
func (h *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move"); err != nil {
		return
	}
	respondResult(w, r, h.svc, h.svc.Move(r.Context(), req.DX, req.DY, req.DT))
}

// HandleFace turns the player
// @Summary Face a direction
// @Description Turns the player sprite left or right
// @Tags game
// @Accept json
// @Produce json
// @Param request body FaceRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/face [post]
func (h *GameHandler) HandleFace(w http.ResponseWriter, r *http.Request) {
	var req FaceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Face"); err != nil {
		return
	}
	respondResult(w, r, h.svc, h.svc.Face(r.Context(), domain.Facing(req.Facing)))
}

// HandleSelectSeed picks the active seed
// @Summary Select a seed
// @Description Chooses the seed used by plant and feed
// @Tags game
// @Accept json
// @Produce json
// @Param request body SelectSeedRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/select-seed [post]
func (h *GameHandler) HandleSelectSeed(w http.ResponseWriter, r *http.Request) {
	var req SelectSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select seed"); err != nil {
		return
	}
	respondResult(w, r, h.svc, h.svc.SelectSeed(r.Context(), req.SeedID))
}

// HandleCycleSeed advances to the next held seed
// @Summary Cycle seeds
// @Description Selects the next seed held in the inventory
// @Tags game
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/cycle-seed [post]
func (h *GameHandler) HandleCycleSeed(w http.ResponseWriter, r *http.Request) {
	respondResult(w, r, h.svc, h.svc.CycleSeed(r.Context()))
}

// HandleDistrict selects the displayed market district
// @Summary Select district
// @Description Chooses the district shown for market prices
// @Tags game
// @Accept json
// @Produce json
// @Param request body DistrictRequest true "Request body"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/district [post]
func (h *GameHandler) HandleDistrict(w http.ResponseWriter, r *http.Request) {
	var req DistrictRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select district"); err != nil {
		return
	}
	respondResult(w, r, h.svc, h.svc.SelectDistrict(r.Context(), req.District))
}

// HandleReset starts a new game
// @Summary Reset the game
// @Description Starts a new game from the initial snapshot
// @Tags game
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 409 {object} ActionResponse
// @Router /api/v1/game/reset [post]
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	respondResult(w, r, h.svc, h.svc.Reset(r.Context()))
}

func handlePlotAction(w http.ResponseWriter, r *http.Request, opName string, svc GameService,
	action func(ctx context.Context, plotID string) game.Result) {
	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}
	respondResult(w, r, svc, action(r.Context(), req.PlotID))
}

// respondResult writes 200 for applied operations and a 4xx carrying the
// rejection code otherwise. Both include the current snapshot.
func respondResult(w http.ResponseWriter, r *http.Request, svc GameService, res game.Result) {
	status := http.StatusOK
	if !res.Applied {
		status = rejectionStatus(res.Reason)
		logger.FromContext(r.Context()).Debug(LogMsgActionRejected, "code", res.Code, "reason", res.Message)
	}
	respondJSON(w, status, ActionResponse{Result: res, Snapshot: svc.Snapshot()})
}
