package adapter

import "strings"

// defaultAuthorizationScheme is prepended to bare tokens.
const defaultAuthorizationScheme = "JWT "

// authorizationSchemes lists, in match order, the prefixes that mark an
// Authorization value as already formed. Matching is case-insensitive.
var authorizationSchemes = []string{"bearer ", "jwt "}

// NormalizeAuthorization returns value unchanged when it already starts with
// one of the recognized schemes ("bearer ", "jwt ", any case) and prefixes it
// with "JWT " otherwise. The empty value stays empty so no header is sent.
func NormalizeAuthorization(value string) string {
	if value == "" {
		return ""
	}

	lower := strings.ToLower(value)
	for _, scheme := range authorizationSchemes {
		if strings.HasPrefix(lower, scheme) {
			return value
		}
	}

	return defaultAuthorizationScheme + value
}
