// Package utils provides general-purpose helper utilities
// used across different parts of the gateway.
// Includes type-safe context keys, JSON request and response helpers,
// the outbound HTTP client, trace ids and unverified JWT claim extraction.
package utils

import (
	"context"

	"github.com/MKhiriev/iros-gateway/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserTokenCtxKey is the key under which the user's raw authorization value
// is stored once the user service has granted access. Handlers forward it
// on every user service call made on behalf of the caller.
var UserTokenCtxKey = contextKey("userToken")

// UserClaimsCtxKey is the key under which the unverified claims of the
// caller's JWT are stored.
var UserClaimsCtxKey = contextKey("userClaims")

// GetUserTokenFromContext retrieves the caller's authorization value.
//
// Returns ok == false when the value is missing, empty or has an unexpected
// type.
func GetUserTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(UserTokenCtxKey).(string)
	return token, ok && token != ""
}

// GetUserClaimsFromContext retrieves the caller's JWT claims.
func GetUserClaimsFromContext(ctx context.Context) (models.UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsCtxKey).(models.UserClaims)
	return claims, ok
}
