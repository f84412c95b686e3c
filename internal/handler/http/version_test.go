package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fraud-guard/models"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name string
		info models.ServiceInfo
		want string
	}{
		{
			name: "genai backend",
			info: models.ServiceInfo{Version: "1.2.3", Generator: "genai", AnalysisModel: "pro", RegistryModel: "flash"},
			want: `{"version":"1.2.3","generator":"genai","analysisModel":"pro","registryModel":"flash"}`,
		},
		{
			name: "version only",
			info: models.ServiceInfo{Version: "a1b2c3d"},
			want: `{"version":"a1b2c3d","generator":"","analysisModel":"","registryModel":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, m := newMockedHandler(t)
			m.appInfo.EXPECT().GetServiceInfo(gomock.Any()).Return(tt.info)

			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			rec := httptest.NewRecorder()

			// Act
			h.getServerVersion(rec, req)

			// Assert
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestGetServerVersion_ThroughRouter(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectAuthorized()
	m.appInfo.EXPECT().GetServiceInfo(gomock.Any()).Return(models.ServiceInfo{Version: "0.9.0", Generator: "rest"})

	rec := serve(h.Init(), http.MethodGet, "/api/version", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"0.9.0"`)
	assert.Contains(t, rec.Body.String(), `"generator":"rest"`)
}
