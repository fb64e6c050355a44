package models

// LoginRequest carries user credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest asks the user service to send a reset token.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordReset sets a new password using a previously issued token.
type PasswordReset struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company,omitempty"`
}

// DeleteUserRequest is the body of DELETE /users and DELETE /users/force.
type DeleteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RoleRequest is the body of POST /users/role and DELETE /users/role.
type RoleRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Role    string `json:"role" validate:"required"`
	Section string `json:"section,omitempty"`
}

// ValidationObject is the nested object of [ValidationRequest].
type ValidationObject struct {
	Int *int `json:"int" validate:"required"`
}

// PlainObject is the second nested object of [ValidationRequest].
type PlainObject struct {
	Bool *bool `json:"bool" validate:"required"`
}

// ValidationRequest is the body of the POST /validation demo route.
//
// When Str is "before" the Date must lie in the past; when Str is "after"
// it must lie in the future.
type ValidationRequest struct {
	Str      string            `json:"str" validate:"required"`
	Obj      *ValidationObject `json:"obj" validate:"required"`
	PlainObj *PlainObject      `json:"plain_obj" validate:"required"`
	Date     *Date             `json:"date" validate:"required"`
}
