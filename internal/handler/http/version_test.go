package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/iros-gateway/internal/service"
	"github.com/MKhiriev/iros-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAppInfo(svc service.AppInfoService) *Handler {
	return newTestHandler(&service.Services{AppInfoService: svc})
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newHandlerWithAppInfo(&mockAppInfoService{version: "v1.2.3"})
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	updatedAt := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		info models.AppInfo
	}{
		{
			name: "registered",
			info: models.AppInfo{
				App: "billing", Version: "1.0.0", Status: "ok",
				Registration: models.RegistrationStatus{State: models.RegistrationSucceeded, UpdatedAt: updatedAt},
			},
		},
		{
			name: "registration failed",
			info: models.AppInfo{
				App: "billing", Version: "1.0.0", Status: "degraded",
				Registration: models.RegistrationStatus{State: models.RegistrationFailed, Error: "http 403: forbidden", UpdatedAt: updatedAt},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAppInfo(&mockAppInfoService{info: tt.info})
			rec := httptest.NewRecorder()

			h.health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var got models.AppInfo
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.info, got)
		})
	}
}
