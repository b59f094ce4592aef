package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken     = errors.New("missing bearer token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrAudienceMismatch = errors.New("token client_id does not match audience")
)

// TokenValidator verifies Cognito access tokens.
//
// Checks, all with zero clock skew: RS256 signature against keyfunc, issuer,
// presence and expiry of exp, and the client_id claim against audience.
// Cognito access tokens carry no aud claim, so client_id stands in for it.
type TokenValidator struct {
	issuer   string
	audience string
	keyfunc  jwt.Keyfunc
	parser   *jwt.Parser
}

// NewTokenValidator creates a validator. keyfunc resolves the verification
// key for a token, normally from the pool's JWKS (see NewJWKSKeyfunc).
func NewTokenValidator(issuer, audience string, keyfunc jwt.Keyfunc) *TokenValidator {
	return &TokenValidator{
		issuer:   issuer,
		audience: audience,
		keyfunc:  keyfunc,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(0),
		),
	}
}

// Validate parses raw and returns its claims if every check passes.
func (v *TokenValidator) Validate(raw string) (jwt.MapClaims, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	token, err := v.parser.ParseWithClaims(raw, claims, v.keyfunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	clientID, _ := claims["client_id"].(string)
	if clientID == "" || clientID != v.audience {
		return nil, ErrAudienceMismatch
	}

	return claims, nil
}
