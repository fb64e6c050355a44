package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"

	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/utils"
	"github.com/MKhiriev/iros-gateway/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// users is the user service client. Access checks and credential
	// operations are delegated to it.
	users adapter.UserAdapter

	// apiKey is the shared secret expected from API clients.
	apiKey []byte

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService backed by the user service.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users adapter.UserAdapter, cfg config.API, logger *logger.Logger) AuthService {
	return &authService{
		users:  users,
		apiKey: []byte(cfg.Key),
		logger: logger,
	}
}

// CheckAPIKey compares key with the configured API key in constant time. An
// unset API key rejects every caller.
func (s *authService) CheckAPIKey(ctx context.Context, key string) error {
	if len(s.apiKey) == 0 || subtle.ConstantTimeCompare(s.apiKey, []byte(key)) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}

// Authorize implements [AuthService].
func (s *authService) Authorize(ctx context.Context, authorization, role, section string) (models.UserClaims, error) {
	if authorization == "" {
		return models.UserClaims{}, ErrEmptyAuthorization
	}

	if _, err := s.users.CanAccess(ctx, authorization, role, section); err != nil {
		return models.UserClaims{}, err
	}

	claims, err := utils.ParseUserClaims(authorization)
	if err != nil {
		// the user service accepted the token; it is just not a JWT we can read
		logger.FromContext(ctx).Debug().Err(err).Msg("authorized token carries no readable claims")
		return models.UserClaims{}, nil
	}

	return claims, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (json.RawMessage, error) {
	return s.users.Login(ctx, req.Email, req.Password)
}

func (s *authService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (json.RawMessage, error) {
	return s.users.RequestPasswordReset(ctx, req.Email)
}

func (s *authService) ResetPassword(ctx context.Context, req models.PasswordReset) (json.RawMessage, error) {
	return s.users.ResetPassword(ctx, req.Email, req.Token, req.Password)
}
