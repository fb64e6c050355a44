package models

// ErrorResponse is the JSON body written for public errors.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// ValidResponse is the body of a successful POST /validation.
type ValidResponse struct {
	Valid bool `json:"valid"`
}

// DeleteUserResponse lists the roles removed by DELETE /users.
type DeleteUserResponse struct {
	Email        string `json:"email"`
	DeletedRoles []Role `json:"deleted_roles"`
}
