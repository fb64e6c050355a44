package service

import (
	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/validators"
)

type Services struct {
	AuthService    AuthService
	MailService    MailService
	UserService    UserService
	AppInfoService AppInfoService
}

// Adapters groups the outbound clients the services delegate to.
type Adapters struct {
	Mail adapter.MailAdapter
	User adapter.UserAdapter
}

func NewServices(adapters Adapters, registration RegistrationStatusProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, registration, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()
	mailService := NewMailValidationService(validator).Wrap(NewMailService(adapters.Mail, logger))

	return &Services{
		AuthService:    NewAuthService(adapters.User, cfg.API, logger),
		MailService:    mailService,
		UserService:    NewUserService(adapters.User, logger),
		AppInfoService: appInfoService,
	}, nil
}
