package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	session, err := h.services.CredentialService.Register(ctx, request.UserProfile, request.Password)
	if err != nil {
		writeServiceError(w, r, err, "registration failed")
		return
	}

	h.writeSession(w, r, session, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	session, err := h.services.CredentialService.Login(ctx, request.Email, request.Password)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	log.Debug().Str("email", session.Email).Msg("user successfully logged in")
	h.writeSession(w, r, session, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err := h.services.CredentialService.ResetPassword(r.Context(), request.Email, request.NewPassword)
	if errors.Is(err, service.ErrAccountNotFound) {
		log.Info().Str("email", request.Email).Msg("password reset for unknown email")
		utils.WriteError(w, app.MsgNoAccountForEmail, http.StatusNotFound)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "password reset failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CredentialService.Logout(r.Context()); err != nil {
		writeServiceError(w, r, err, "logout failed")
		return
	}

	h.services.Orchestrator.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// currentSession echoes the session the auth middleware matched the bearer
// token against. No new token is issued.
func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoActiveSession, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

// writeSession answers with session and a fresh bearer token for it.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, session models.Session, status int) {
	token, err := h.services.TokenService.CreateToken(r.Context(), session)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	utils.WriteJSON(w, session, status)
}
