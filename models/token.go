package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the claim set carried by JWTs issued by the user service.
// Tokens are verified by the user service itself; this service only reads
// the claims to enrich request context and logs.
type UserClaims struct {
	// Email is the address of the authenticated user.
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// Identity returns the most specific identifier available in the claims:
// the email when present, otherwise the subject.
func (c UserClaims) Identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}
