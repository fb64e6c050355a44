// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients of the gateway: one per
// remote service it calls.
//
// Each client is constructed once with its [config.ServiceCredential] and is
// safe for concurrent use. The mail client hides every failure behind
// [ErrMailRequestFailed]; the user client translates failures into
// *[app.HTTPError] values that the HTTP layer renders as they are.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/iros-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MailAdapter sends mail and error reports through the mail service.
type MailAdapter interface {
	// Send delivers msg via POST /mail and returns the raw response body.
	Send(ctx context.Context, msg models.MailMessage) (json.RawMessage, error)

	// SendError reports an application error via POST /error. An empty level
	// defaults to "error".
	SendError(ctx context.Context, message, level, info string) (json.RawMessage, error)
}

// UserAdapter calls the user service on behalf of this application.
//
// Methods taking an authorization value forward it as the Authorization
// header after [NormalizeAuthorization]. Every failure is an *app.HTTPError.
type UserAdapter interface {
	// RegisterApp announces the application and its sections via
	// POST /app/settings using the service key.
	RegisterApp(ctx context.Context) error

	// Login exchanges credentials for a token via POST /auth/password.
	Login(ctx context.Context, email, password string) (json.RawMessage, error)

	// CanAccess asks whether the token holder has role in section of this
	// application. Empty role means "user"; empty section is omitted.
	CanAccess(ctx context.Context, authorization, role, section string) (json.RawMessage, error)

	// RequestPasswordReset asks the user service to send a reset token.
	RequestPasswordReset(ctx context.Context, email string) (json.RawMessage, error)

	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, email, token, password string) (json.RawMessage, error)

	// GetUsers lists users, optionally narrowed to company.
	GetUsers(ctx context.Context, authorization, company string) (json.RawMessage, error)

	// GetUser fetches one user record by email.
	GetUser(ctx context.Context, authorization, email string) (models.User, error)

	// CreateUser creates a user, optionally attached to company.
	CreateUser(ctx context.Context, email, authorization, company string) (json.RawMessage, error)

	// AddRole grants role (optionally narrowed to section) in this application.
	AddRole(ctx context.Context, email, role, section, authorization string) (json.RawMessage, error)

	// DeleteRole revokes role in this application. An empty section is left
	// out of the request body.
	DeleteRole(ctx context.Context, email, role, section, authorization string) (json.RawMessage, error)

	// ForceDeleteUser removes the user record unconditionally.
	ForceDeleteUser(ctx context.Context, email, authorization string) (json.RawMessage, error)

	// DeleteUser revokes every role the user holds in this application and
	// returns the revoked roles in the order the user service listed them.
	// A user without roles in this application yields nil, nil.
	DeleteUser(ctx context.Context, email, authorization string) ([]models.Role, error)
}
