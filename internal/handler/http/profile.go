package http

import (
	"encoding/json"
	"net/http"

	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/utils"
	"github.com/arenacast/backend/internal/validators"
	"github.com/arenacast/backend/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), subject)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("error getting profile")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: profile}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if issues := validators.ValidateUpdateProfile(req); len(issues) > 0 {
		log.Info().Str("func", "*Handler.updateProfile").Int("issues", len(issues)).Msg("request body rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: "validation failed", Issues: issues}, http.StatusBadRequest)
		return
	}

	update := models.ProfileUpdate{
		Name:     req.Name,
		GamerTag: req.GamerTag,
	}
	if req.Bio != nil {
		update.Bio = *req.Bio
	}
	if req.PrivacySettings != nil {
		update.PrivacyMode = &req.PrivacySettings.Mode
	}

	if err := h.services.ProfileService.UpdateProfile(r.Context(), subject, update); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("error updating profile")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// writeError maps a service error onto an HTTP status and writes the error
// response body. Internal error text reaches the client only in the
// development posture; other callers get the generic status text.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	if status != http.StatusInternalServerError || h.devMode {
		message = err.Error()
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
