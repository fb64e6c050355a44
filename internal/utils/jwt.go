package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/iros-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationValue is returned when an Authorization value does
// not carry a token.
var ErrInvalidAuthorizationValue = errors.New("invalid authorization value")

// ParseBearerToken returns the token part of an Authorization value of the
// form "<scheme> <token>". A value without a scheme is returned as is.
func ParseBearerToken(authorization string) (string, error) {
	value := strings.TrimSpace(authorization)
	if value == "" {
		return "", ErrInvalidAuthorizationValue
	}

	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		return parts[0], nil
	case 2:
		return parts[1], nil
	default:
		return "", ErrInvalidAuthorizationValue
	}
}

// ParseUserClaims extracts the claims of a user service JWT without
// verifying its signature. The user service is the authority over tokens;
// claims read here are used for logging and request context only.
//
// authorization may be a raw token or carry a "JWT"/"Bearer" scheme.
func ParseUserClaims(authorization string) (models.UserClaims, error) {
	tokenString, err := ParseBearerToken(authorization)
	if err != nil {
		return models.UserClaims{}, err
	}

	var claims models.UserClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.UserClaims{}, fmt.Errorf("error parsing user token claims: %w", err)
	}

	return claims, nil
}
