// Package auth extracts and verifies Cognito bearer tokens.
package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yukikurage/todolist-api/internal/constants"
)

// SubjectFromHeader returns the sub claim of the bearer token carried in an
// Authorization header value, or "" when there is none. The token is decoded
// but not verified; verification is RequireAuth's job.
func SubjectFromHeader(header string) string {
	token, ok := BearerToken(header)
	if !ok {
		return ""
	}
	return SubjectFromToken(token)
}

// SubjectFromToken returns the sub claim of a raw JWT without verifying it.
func SubjectFromToken(raw string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// BearerToken strips the "Bearer " prefix from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, constants.BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(constants.BearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
