package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/iros-gateway/internal/app"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/mock"
	"github.com/MKhiriev/iros-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserAdapter) {
	t.Helper()
	users := mock.NewMockUserAdapter(gomock.NewController(t))
	return NewUserService(users, logger.Nop()), users
}

func TestUserService_DeleteUser(t *testing.T) {
	roles := []models.Role{{App: "billing", Role: "admin"}, {App: "billing", Role: "user", Section: "north"}}

	tests := []struct {
		name      string
		roles     []models.Role
		err       error
		wantRoles []models.Role
		wantErr   bool
	}{
		{name: "roles deleted", roles: roles, wantRoles: roles},
		{name: "no roles in app", roles: nil, wantRoles: []models.Role{}},
		{name: "failure", err: app.NewHTTPError("locked", true, nil, http.StatusConflict), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestUserService(t)
			users.EXPECT().DeleteUser(gomock.Any(), "jane@example.com", "abc123").Return(tt.roles, tt.err)

			resp, err := svc.DeleteUser(context.Background(), "abc123", "jane@example.com")

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jane@example.com", resp.Email)
			assert.Equal(t, tt.wantRoles, resp.DeletedRoles)
		})
	}
}

func TestUserService_Delegation(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestUserService(t)
	ok := json.RawMessage(`{"ok":true}`)

	gomock.InOrder(
		users.EXPECT().GetUsers(ctx, "abc123", "acme").Return(ok, nil),
		users.EXPECT().CreateUser(ctx, "jane@example.com", "abc123", "acme").Return(ok, nil),
		users.EXPECT().ForceDeleteUser(ctx, "jane@example.com", "abc123").Return(ok, nil),
		users.EXPECT().AddRole(ctx, "jane@example.com", "admin", "north", "abc123").Return(ok, nil),
		users.EXPECT().DeleteRole(ctx, "jane@example.com", "admin", "", "abc123").Return(ok, nil),
	)

	_, err := svc.ListUsers(ctx, "abc123", "acme")
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "abc123", models.CreateUserRequest{Email: "jane@example.com", Company: "acme"})
	require.NoError(t, err)
	_, err = svc.ForceDeleteUser(ctx, "abc123", "jane@example.com")
	require.NoError(t, err)
	_, err = svc.AddRole(ctx, "abc123", models.RoleRequest{Email: "jane@example.com", Role: "admin", Section: "north"})
	require.NoError(t, err)
	_, err = svc.DeleteRole(ctx, "abc123", models.RoleRequest{Email: "jane@example.com", Role: "admin"})
	require.NoError(t, err)
}

func TestUserService_ForceDeleteUser_Error(t *testing.T) {
	svc, users := newTestUserService(t)
	notFound := app.NewHTTPError("not found", true, nil, http.StatusNotFound)
	users.EXPECT().ForceDeleteUser(gomock.Any(), "ghost@example.com", "abc123").Return(nil, notFound)

	_, err := svc.ForceDeleteUser(context.Background(), "abc123", "ghost@example.com")

	assert.ErrorIs(t, err, notFound)
}
