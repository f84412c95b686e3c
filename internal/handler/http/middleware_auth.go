package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The bearer token must verify with [service.TokenService.ParseToken] and its
// subject must be the email of the persisted session. A token issued before a
// logout, or before another user signed in, is rejected even if it has not
// expired yet.
//
// On success the session and its email are stored in the request context
// under [utils.SessionCtxKey] and [utils.SessionEmailCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		session, ok, err := h.services.CredentialService.CurrentSession(ctx)
		if err != nil {
			writeServiceError(w, r, err, "error loading session")
			return
		}
		if !ok || !models.SameEmail(session.Email, token.Email) {
			log.Err(ErrSessionMismatch).Str("token_email", token.Email).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)
		ctx = context.WithValue(ctx, utils.SessionEmailCtxKey, session.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest returns the session stored by auth.
func sessionFromRequest(r *http.Request) (models.Session, error) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return models.Session{}, service.ErrNoActiveSession
	}
	return session, nil
}
