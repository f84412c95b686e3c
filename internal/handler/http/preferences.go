package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// preferencesResponse never echoes the stored API key.
type preferencesResponse struct {
	Theme     models.Theme `json:"theme"`
	HasAPIKey bool         `json:"hasApiKey"`
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.services.PreferencesService.Preferences(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error loading preferences")
		return
	}

	utils.WriteJSON(w, preferencesResponse{Theme: prefs.Theme, HasAPIKey: prefs.APIKey != ""}, http.StatusOK)
}

func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.services.PreferencesService.Theme(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error loading theme")
		return
	}

	utils.WriteJSON(w, models.ThemeRequest{Theme: theme}, http.StatusOK)
}

func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	var request models.ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.PreferencesService.SetTheme(r.Context(), request.Theme); err != nil {
		writeServiceError(w, r, err, "error saving theme")
		return
	}

	utils.WriteJSON(w, request, http.StatusOK)
}

func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.services.PreferencesService.ToggleTheme(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error toggling theme")
		return
	}

	utils.WriteJSON(w, models.ThemeRequest{Theme: theme}, http.StatusOK)
}

func (h *Handler) setAPIKey(w http.ResponseWriter, r *http.Request) {
	var request models.APIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.PreferencesService.SetAPIKey(r.Context(), request.APIKey); err != nil {
		writeServiceError(w, r, err, "error saving api key")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
