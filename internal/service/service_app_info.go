package service

import (
	"context"

	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/models"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

type appInfoService struct {
	appName    string
	appVersion string

	registration RegistrationStatusProvider

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService for cfg. registration may be
// nil when no startup registration runs; the app then reports itself
// healthy with a pending registration.
func NewAppInfoService(cfg config.App, registration RegistrationStatusProvider, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if cfg.Name == "" {
		return nil, ErrAppNameIsNotSpecified
	}

	return &appInfoService{
		appName:      cfg.Name,
		appVersion:   cfg.Version,
		registration: registration,
		logger:       logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetAppInfo reports the app as degraded while its registration on the user
// service has failed.
func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	registration := models.RegistrationStatus{State: models.RegistrationPending}
	if s.registration != nil {
		registration = s.registration.Status()
	}

	status := statusOK
	if registration.Degraded() {
		status = statusDegraded
	}

	return models.AppInfo{
		App:          s.appName,
		Version:      s.appVersion,
		Status:       status,
		Registration: registration,
	}
}
