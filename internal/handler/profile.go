package handler

import (
	"net/http"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/logger"
	"github.com/osse101/Farmstead_Go/internal/profile"
)

// ProfileHandler serves the persisted display name
type ProfileHandler struct {
	service   profile.Service
	profileID string
}

// NewProfileHandler creates a profile handler bound to the host's profile id
func NewProfileHandler(service profile.Service, profileID string) *ProfileHandler {
	if profileID == "" {
		profileID = domain.DefaultProfileID
	}
	return &ProfileHandler{service: service, profileID: profileID}
}

// UpdateProfileRequest changes the display name and, optionally, the preferred district
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=32,excludesall=\x00\n\r\t"`
	District    string `json:"district,omitempty" validate:"omitempty,max=64"`
}

// HandleGetProfile returns the stored profile
// @Summary Get profile
// @Description Returns the stored player profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProfile(r.Context(), h.profileID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUpdateProfile stores a new display name
// @Summary Update profile
// @Description Stores a new display name and preferred district
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Request body"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile [put]
func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
		return
	}

	p, err := h.service.SetDisplayName(r.Context(), h.profileID, req.DisplayName)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgProfileUpdateFailed, "error", err)
		respondServiceError(w, r, ErrMsgUpdateProfileFailed, err)
		return
	}

	if req.District != "" {
		if p, err = h.service.SetDistrict(r.Context(), h.profileID, req.District); err != nil {
			respondServiceError(w, r, ErrMsgUpdateProfileFailed, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, p)
}
