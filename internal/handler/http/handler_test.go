package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/mock"
	"github.com/MKhiriev/go-fraud-guard/internal/service"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// ─────────────────────────────────────────────
// fixtures
// ─────────────────────────────────────────────

const testBearer = "signed.jwt.token"

var testSession = models.Session{
	UserProfile: models.UserProfile{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+91 98765 43210",
		City:       "Pune",
		DOB:        "1990-01-01",
		IsVerified: true,
	},
	StartedAt: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
}

type handlerMocks struct {
	credentials  *mock.MockCredentialService
	orchestrator *mock.MockOrchestrator
	preferences  *mock.MockPreferencesService
	tokens       *mock.MockTokenService
	appInfo      *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T) (*Handler, *handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		credentials:  mock.NewMockCredentialService(ctrl),
		orchestrator: mock.NewMockOrchestrator(ctrl),
		preferences:  mock.NewMockPreferencesService(ctrl),
		tokens:       mock.NewMockTokenService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		CredentialService:  m.credentials,
		Orchestrator:       m.orchestrator,
		PreferencesService: m.preferences,
		TokenService:       m.tokens,
		AppInfoService:     m.appInfo,
	}

	return NewHandler(services, config.Server{AllowedOrigins: []string{"http://localhost:5173"}}, logger.Nop()), m
}

// expectAuthorized lets one request pass the auth middleware as testSession.
func (m *handlerMocks) expectAuthorized() {
	m.tokens.EXPECT().ParseToken(gomock.Any(), testBearer).Return(models.Token{Email: testSession.Email}, nil)
	m.credentials.EXPECT().CurrentSession(gomock.Any()).Return(testSession, true, nil)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func serve(router http.Handler, method, target string, body *bytes.Reader, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testBearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{AllowedOrigins: []string{"http://a.test"}}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, []string{"http://a.test"}, h.allowedOrigins)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

// protectedRoutes answer 401 without a bearer token, which proves they exist
// and sit behind the auth middleware.
var protectedRoutes = []routeCase{
	{http.MethodPut, "/api/profile"},
	{http.MethodPost, "/api/profile/password"},
	{http.MethodPost, "/api/analysis"},
	{http.MethodGet, "/api/registry"},
	{http.MethodGet, "/api/state"},
	{http.MethodPost, "/api/state/reset"},
	{http.MethodGet, "/api/history"},
	{http.MethodDelete, "/api/history"},
	{http.MethodPost, "/api/history/DNA-ABC123/select"},
	{http.MethodGet, "/api/preferences"},
	{http.MethodGet, "/api/preferences/theme"},
	{http.MethodPut, "/api/preferences/theme"},
	{http.MethodPost, "/api/preferences/theme/toggle"},
	{http.MethodPut, "/api/preferences/api-key"},
	{http.MethodGet, "/api/version"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, nil, false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeError(t, rec))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h.Init(), http.MethodGet, "/api/nonexistent", nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, tc := range []routeCase{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/analysis"},
		{http.MethodPatch, "/api/preferences/theme"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, nil, false)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h.Init(), http.MethodGet, "/api/auth/session", nil, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/analysis", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/analysis", nil)
		req.Header.Set("Origin", "http://evil.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestInit_RecoversPanics(t *testing.T) {
	h, m := newMockedHandler(t)
	m.tokens.EXPECT().ParseToken(gomock.Any(), testBearer).Return(models.Token{Email: testSession.Email}, nil)
	m.credentials.EXPECT().CurrentSession(gomock.Any()).DoAndReturn(
		func(context.Context) (models.Session, bool, error) { panic("boom") },
	)

	rec := serve(h.Init(), http.MethodGet, "/api/auth/session", nil, true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
