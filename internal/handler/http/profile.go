package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// updateProfile re-issues the token when the email changed, since the old
// one names an email that no longer has a session.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := sessionFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err, "no session")
		return
	}

	var update models.ProfileUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.CredentialService.UpdateProfile(r.Context(), session, update)
	if err != nil {
		writeServiceError(w, r, err, "profile update failed")
		return
	}

	if !models.SameEmail(updated.Email, session.Email) {
		h.writeSession(w, r, updated, http.StatusOK)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := utils.GetSessionEmailFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoActiveSession, http.StatusUnauthorized)
		return
	}

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err := h.services.CredentialService.ChangePassword(r.Context(), email, request.CurrentPassword, request.NewPassword)
	if err != nil {
		writeServiceError(w, r, err, "password change failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
