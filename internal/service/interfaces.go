package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/iros-gateway/models"
)

// AuthService authenticates inbound callers. API clients present the shared
// API key; users present a JWT issued by the user service, which remains the
// authority over it.
type AuthService interface {
	// CheckAPIKey returns ErrInvalidAPIKey unless key matches the configured
	// API key.
	CheckAPIKey(ctx context.Context, key string) error

	// Authorize asks the user service whether the holder of authorization
	// has role in section of this application. On success it returns the
	// unverified claims of the token (zero when the token is opaque).
	Authorize(ctx context.Context, authorization, role, section string) (models.UserClaims, error)

	Login(ctx context.Context, req models.LoginRequest) (json.RawMessage, error)
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (json.RawMessage, error)
	ResetPassword(ctx context.Context, req models.PasswordReset) (json.RawMessage, error)
}

// MailService sends mail through the mail service.
type MailService interface {
	Send(ctx context.Context, msg models.MailMessage) (json.RawMessage, error)
	SendError(ctx context.Context, report models.ErrorReport) (json.RawMessage, error)
}

// MailServiceWrapper defines middleware composition for MailService.
// Implementations wrap an existing MailService to add behavior such as
// validating.
type MailServiceWrapper interface {
	Wrap(MailService) MailService // returns a decorated MailService applying additional behavior
}

// UserService administers the users of this application on the user
// service. Every method acts on behalf of the holder of authorization.
type UserService interface {
	ListUsers(ctx context.Context, authorization, company string) (json.RawMessage, error)
	CreateUser(ctx context.Context, authorization string, req models.CreateUserRequest) (json.RawMessage, error)

	// DeleteUser revokes all roles the user holds in this application.
	DeleteUser(ctx context.Context, authorization, email string) (models.DeleteUserResponse, error)

	// ForceDeleteUser removes the user record itself.
	ForceDeleteUser(ctx context.Context, authorization, email string) (json.RawMessage, error)

	AddRole(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error)
	DeleteRole(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error)
}

// AppInfoService reports the identity and health of the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// RegistrationStatusProvider exposes the outcome of the startup registration
// on the user service.
type RegistrationStatusProvider interface {
	Status() models.RegistrationStatus
}
