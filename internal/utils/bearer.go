package utils

import (
	"errors"
	"strings"
)

var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

const bearerScheme = "bearer"

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively; anything else,
// including extra fields, is rejected.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
