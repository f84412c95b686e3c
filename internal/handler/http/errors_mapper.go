package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fraud-guard/internal/adapter"
	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/gateway"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first entry matching with
// errors.Is wins. More specific causes come before the sentinels that wrap
// them.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{validators.ErrPasswordTooShort, errorResponse{http.StatusBadRequest, app.MsgPasswordTooShort}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrDuplicateAccount, errorResponse{http.StatusConflict, app.MsgDuplicateAccount}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrAccountNotFound, errorResponse{http.StatusNotFound, app.MsgAccountNotFound}},
	{service.ErrIncorrectPassword, errorResponse{http.StatusUnauthorized, app.MsgIncorrectPassword}},
	{service.ErrNoActiveSession, errorResponse{http.StatusUnauthorized, app.MsgNoActiveSession}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrEmptyInput, errorResponse{http.StatusBadRequest, app.MsgEmptyInput}},
	{service.ErrStaleResponse, errorResponse{http.StatusConflict, app.MsgStaleResponse}},
	{service.ErrRecordNotFound, errorResponse{http.StatusNotFound, app.MsgRecordNotFound}},
	{service.ErrInvalidTheme, errorResponse{http.StatusBadRequest, app.MsgInvalidTheme}},

	{gateway.ErrEmptyInput, errorResponse{http.StatusBadRequest, app.MsgEmptyInput}},
	{gateway.ErrInvalidInput, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{gateway.ErrAnalysisParse, errorResponse{http.StatusBadGateway, app.MsgAnalysisFailed}},
	{gateway.ErrRegistryParse, errorResponse{http.StatusBadGateway, app.MsgRegistryUnavailable}},

	{adapter.ErrMissingAPIKey, errorResponse{http.StatusServiceUnavailable, app.MsgMissingAPIKey}},
	{adapter.ErrUnauthorized, errorResponse{http.StatusBadGateway, app.MsgAnalysisUnavailable}},
	{adapter.ErrQuotaExceeded, errorResponse{http.StatusTooManyRequests, app.MsgAnalysisUnavailable}},
	{adapter.ErrBadRequest, errorResponse{http.StatusBadGateway, app.MsgAnalysisUnavailable}},
	{adapter.ErrUpstream, errorResponse{http.StatusBadGateway, app.MsgAnalysisUnavailable}},
	{adapter.ErrEmptyResponse, errorResponse{http.StatusBadGateway, app.MsgAnalysisUnavailable}},

	{store.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeServiceError logs err and answers with the mapped status and
// user-facing message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg(msg)

	utils.WriteError(w, resp.message, resp.status)
}
