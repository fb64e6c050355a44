package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/utils"
)

const apiKeyHeader = "X-Api-Key"

// apiKeyAuth is an HTTP middleware that admits API clients presenting the
// configured API key, either in the "X-Api-Key" header or as
// "Authorization: Bearer <key>". Every other request is rejected with 401.
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(apiKeyHeader)
		if key == "" {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				h.writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			var err error
			if key, err = getTokenFromAuthHeader(authHeader); err != nil {
				h.writeError(w, r, err)
				return
			}
		}

		if err := h.services.AuthService.CheckAPIKey(r.Context(), key); err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// userAuth returns an HTTP middleware that lets a request through only when
// the user service confirms that the caller's "Authorization" value grants
// role in this application. The optional "section" query parameter narrows
// the check.
//
// On success the raw authorization value and the unverified claims of the
// token are stored in the request context under [utils.UserTokenCtxKey] and
// [utils.UserClaimsCtxKey], and the request logger is tagged with the user.
func (h *Handler) userAuth(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				h.writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			ctx := r.Context()
			claims, err := h.services.AuthService.Authorize(ctx, authHeader, role, r.URL.Query().Get("section"))
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			if identity := claims.Identity(); identity != "" {
				l := logger.FromContext(ctx).With().Str("user", identity).Logger()
				ctx = l.WithContext(ctx)
			}

			ctx = context.WithValue(ctx, utils.UserTokenCtxKey, authHeader)
			ctx = context.WithValue(ctx, utils.UserClaimsCtxKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getTokenFromAuthHeader extracts the token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
//
// It returns [ErrInvalidAuthorizationHeader] if the header contains fewer
// than two space-separated parts and [ErrEmptyToken] if the second part is
// empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
