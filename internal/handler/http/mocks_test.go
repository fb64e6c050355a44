package http

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/iros-gateway/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	checkAPIKeyFn          func(ctx context.Context, key string) error
	authorizeFn            func(ctx context.Context, authorization, role, section string) (models.UserClaims, error)
	loginFn                func(ctx context.Context, req models.LoginRequest) (json.RawMessage, error)
	requestPasswordResetFn func(ctx context.Context, req models.PasswordResetRequest) (json.RawMessage, error)
	resetPasswordFn        func(ctx context.Context, req models.PasswordReset) (json.RawMessage, error)
}

func (m *mockAuthService) CheckAPIKey(ctx context.Context, key string) error {
	return m.checkAPIKeyFn(ctx, key)
}

func (m *mockAuthService) Authorize(ctx context.Context, authorization, role, section string) (models.UserClaims, error) {
	return m.authorizeFn(ctx, authorization, role, section)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (json.RawMessage, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (json.RawMessage, error) {
	return m.requestPasswordResetFn(ctx, req)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.PasswordReset) (json.RawMessage, error) {
	return m.resetPasswordFn(ctx, req)
}

// ─────────────────────────────────────────────
// Mock MailService
// ─────────────────────────────────────────────

type mockMailService struct {
	sendFn      func(ctx context.Context, msg models.MailMessage) (json.RawMessage, error)
	sendErrorFn func(ctx context.Context, report models.ErrorReport) (json.RawMessage, error)
}

func (m *mockMailService) Send(ctx context.Context, msg models.MailMessage) (json.RawMessage, error) {
	return m.sendFn(ctx, msg)
}

func (m *mockMailService) SendError(ctx context.Context, report models.ErrorReport) (json.RawMessage, error) {
	return m.sendErrorFn(ctx, report)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	listUsersFn       func(ctx context.Context, authorization, company string) (json.RawMessage, error)
	createUserFn      func(ctx context.Context, authorization string, req models.CreateUserRequest) (json.RawMessage, error)
	deleteUserFn      func(ctx context.Context, authorization, email string) (models.DeleteUserResponse, error)
	forceDeleteUserFn func(ctx context.Context, authorization, email string) (json.RawMessage, error)
	addRoleFn         func(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error)
	deleteRoleFn      func(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error)
}

func (m *mockUserService) ListUsers(ctx context.Context, authorization, company string) (json.RawMessage, error) {
	return m.listUsersFn(ctx, authorization, company)
}

func (m *mockUserService) CreateUser(ctx context.Context, authorization string, req models.CreateUserRequest) (json.RawMessage, error) {
	return m.createUserFn(ctx, authorization, req)
}

func (m *mockUserService) DeleteUser(ctx context.Context, authorization, email string) (models.DeleteUserResponse, error) {
	return m.deleteUserFn(ctx, authorization, email)
}

func (m *mockUserService) ForceDeleteUser(ctx context.Context, authorization, email string) (json.RawMessage, error) {
	return m.forceDeleteUserFn(ctx, authorization, email)
}

func (m *mockUserService) AddRole(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error) {
	return m.addRoleFn(ctx, authorization, req)
}

func (m *mockUserService) DeleteRole(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error) {
	return m.deleteRoleFn(ctx, authorization, req)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
	info    models.AppInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return m.info
}
