package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/utils"
	"github.com/MKhiriev/iros-gateway/models"
	"golang.org/x/sync/errgroup"
)

const defaultAccessRole = "user"

type httpUserAdapter struct {
	client *utils.HTTPClient

	key      string
	app      string
	sections []string

	logger *logger.Logger
}

// NewHTTPUserAdapter constructs the REST implementation of [UserAdapter] for
// the application appName. sections are announced by RegisterApp.
//
// Returns an error if the credential is unusable.
func NewHTTPUserAdapter(cred config.UserService, appName string, timeout time.Duration, log *logger.Logger) (UserAdapter, error) {
	client, err := newServiceClient(cred.ServiceCredential, timeout)
	if err != nil {
		return nil, fmt.Errorf("user adapter: %w", err)
	}

	return &httpUserAdapter{
		client:   client,
		key:      cred.Key,
		app:      appName,
		sections: cred.Sections,
		logger:   log.ForService(config.ServiceUser),
	}, nil
}

// RegisterApp implements [UserAdapter].
func (u *httpUserAdapter) RegisterApp(ctx context.Context) error {
	settings := models.AppSettings{App: u.app, Sections: u.sections}
	if settings.Sections == nil {
		settings.Sections = []string{}
	}

	return u.post(ctx, "/app/settings", settings, "bearer "+u.key, nil)
}

// Login implements [UserAdapter].
func (u *httpUserAdapter) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	var result json.RawMessage
	err := u.post(ctx, "/auth/password", map[string]string{
		"email":    email,
		"password": password,
	}, "", &result)
	return result, err
}

// CanAccess implements [UserAdapter].
func (u *httpUserAdapter) CanAccess(ctx context.Context, authorization, role, section string) (json.RawMessage, error) {
	if role == "" {
		role = defaultAccessRole
	}

	query := url.Values{}
	query.Set("app", u.app)
	query.Set("role", role)
	if section != "" {
		query.Set("section", section)
	}

	var result json.RawMessage
	err := u.get(ctx, "/user/can-access", query, authorization, &result)
	return result, err
}

// RequestPasswordReset implements [UserAdapter].
func (u *httpUserAdapter) RequestPasswordReset(ctx context.Context, email string) (json.RawMessage, error) {
	var result json.RawMessage
	err := u.post(ctx, "/auth/password/request-reset", map[string]string{"email": email}, "", &result)
	return result, err
}

// ResetPassword implements [UserAdapter].
func (u *httpUserAdapter) ResetPassword(ctx context.Context, email, token, password string) (json.RawMessage, error) {
	var result json.RawMessage
	err := u.post(ctx, "/auth/password/reset", map[string]string{
		"email":    email,
		"token":    token,
		"password": password,
	}, "", &result)
	return result, err
}

// GetUsers implements [UserAdapter].
func (u *httpUserAdapter) GetUsers(ctx context.Context, authorization, company string) (json.RawMessage, error) {
	query := url.Values{}
	if company != "" {
		query.Set("company", company)
	}

	var result json.RawMessage
	err := u.get(ctx, "/user/all", query, authorization, &result)
	return result, err
}

// GetUser implements [UserAdapter].
func (u *httpUserAdapter) GetUser(ctx context.Context, authorization, email string) (models.User, error) {
	query := url.Values{}
	query.Set("email", email)

	var user models.User
	err := u.get(ctx, "/user", query, authorization, &user)
	return user, err
}

// CreateUser implements [UserAdapter].
func (u *httpUserAdapter) CreateUser(ctx context.Context, email, authorization, company string) (json.RawMessage, error) {
	var result json.RawMessage
	err := u.post(ctx, "/user", models.CreateUserRequest{Email: email, Company: company}, authorization, &result)
	return result, err
}

// AddRole implements [UserAdapter].
func (u *httpUserAdapter) AddRole(ctx context.Context, email, role, section, authorization string) (json.RawMessage, error) {
	var result json.RawMessage
	err := u.post(ctx, "/user/role", u.roleBody(email, role, section), authorization, &result)
	return result, err
}

// DeleteRole implements [UserAdapter].
func (u *httpUserAdapter) DeleteRole(ctx context.Context, email, role, section, authorization string) (json.RawMessage, error) {
	var result json.RawMessage
	err := u.delete(ctx, "/user/role", u.roleBody(email, role, section), authorization, &result)
	return result, err
}

// ForceDeleteUser implements [UserAdapter].
func (u *httpUserAdapter) ForceDeleteUser(ctx context.Context, email, authorization string) (json.RawMessage, error) {
	var result json.RawMessage
	err := u.delete(ctx, "/user", map[string]string{
		"email": email,
		"app":   u.app,
	}, authorization, &result)
	return result, err
}

// DeleteUser implements [UserAdapter].
//
// Role revocations run concurrently and DeleteUser returns as soon as one of
// them fails. The others are not cancelled: they keep running detached from
// ctx and their results are discarded.
func (u *httpUserAdapter) DeleteUser(ctx context.Context, email, authorization string) ([]models.Role, error) {
	user, err := u.GetUser(ctx, authorization, email)
	if err != nil {
		return nil, err
	}

	roles := user.RolesForApp(u.app)
	if len(roles) == 0 {
		return nil, nil
	}

	// user.Email is the canonical address as stored by the user service
	target := user.Email
	if target == "" {
		target = email
	}

	revokeCtx := context.WithoutCancel(ctx)
	failed := make(chan error, len(roles))
	var g errgroup.Group
	for _, role := range roles {
		g.Go(func() error {
			_, err := u.DeleteRole(revokeCtx, target, role.Role, role.Section, authorization)
			if err != nil {
				failed <- err
			}
			return err
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err = <-failed:
	case err = <-done:
	}
	if err != nil {
		u.logger.Err(err).Str("email", target).Int("roles", len(roles)).Msg("failed to delete user roles")
		return nil, err
	}

	return roles, nil
}

// roleRequest is the body of the /user/role endpoints. Section is omitted
// when empty.
type roleRequest struct {
	Email   string `json:"email"`
	App     string `json:"app"`
	Role    string `json:"role"`
	Section string `json:"section,omitempty"`
}

func (u *httpUserAdapter) roleBody(email, role, section string) roleRequest {
	return roleRequest{Email: email, App: u.app, Role: role, Section: section}
}

func (u *httpUserAdapter) get(ctx context.Context, path string, query url.Values, authorization string, result any) error {
	return u.send(ctx, http.MethodGet, path, query, nil, authorization, result)
}

func (u *httpUserAdapter) post(ctx context.Context, path string, body any, authorization string, result any) error {
	return u.send(ctx, http.MethodPost, path, nil, body, authorization, result)
}

func (u *httpUserAdapter) delete(ctx context.Context, path string, body any, authorization string, result any) error {
	return u.send(ctx, http.MethodDelete, path, nil, body, authorization, result)
}

// send is the single request path of the user adapter. It normalizes the
// authorization value, issues the call and decodes a 2xx body into result.
// Every failure is returned as an *app.HTTPError.
func (u *httpUserAdapter) send(ctx context.Context, method, path string, query url.Values, body any, authorization string, result any) error {
	req := u.client.R().SetContext(ctx)
	if auth := NormalizeAuthorization(authorization); auth != "" {
		req.SetHeader("Authorization", auth)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		u.logger.Err(err).Str("method", method).Str("path", path).Msg("user service request failed")
		return mapUserServiceError(nil)
	}
	if !resp.IsSuccess() {
		u.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("user service rejected request")
		return mapUserServiceError(resp)
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if raw, ok := result.(*json.RawMessage); ok {
		*raw = rawBody(resp.Body())
		return nil
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		u.logger.Err(err).Str("path", path).Msg("failed to decode user service response")
		return mapUserServiceError(nil)
	}

	return nil
}
