package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/models"
)

type userService struct {
	users adapter.UserAdapter

	logger *logger.Logger
}

func NewUserService(users adapter.UserAdapter, logger *logger.Logger) UserService {
	return &userService{users: users, logger: logger}
}

func (s *userService) ListUsers(ctx context.Context, authorization, company string) (json.RawMessage, error) {
	return s.users.GetUsers(ctx, authorization, company)
}

func (s *userService) CreateUser(ctx context.Context, authorization string, req models.CreateUserRequest) (json.RawMessage, error) {
	return s.users.CreateUser(ctx, req.Email, authorization, req.Company)
}

// DeleteUser implements [UserService]. A user without roles in this
// application yields an empty role list.
func (s *userService) DeleteUser(ctx context.Context, authorization, email string) (models.DeleteUserResponse, error) {
	roles, err := s.users.DeleteUser(ctx, email, authorization)
	if err != nil {
		return models.DeleteUserResponse{}, err
	}
	if roles == nil {
		roles = []models.Role{}
	}

	logger.FromContext(ctx).Info().Str("email", email).Int("deleted_roles", len(roles)).Msg("user removed from app")
	return models.DeleteUserResponse{Email: email, DeletedRoles: roles}, nil
}

func (s *userService) ForceDeleteUser(ctx context.Context, authorization, email string) (json.RawMessage, error) {
	body, err := s.users.ForceDeleteUser(ctx, email, authorization)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Warn().Str("email", email).Msg("user force deleted")
	return body, nil
}

func (s *userService) AddRole(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error) {
	return s.users.AddRole(ctx, req.Email, req.Role, req.Section, authorization)
}

func (s *userService) DeleteRole(ctx context.Context, authorization string, req models.RoleRequest) (json.RawMessage, error) {
	return s.users.DeleteRole(ctx, req.Email, req.Role, req.Section, authorization)
}
