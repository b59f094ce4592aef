// Package testutil provides signing keys and tokens for tests that exercise
// the bearer-token gate.
package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	Issuer   = "https://cognito-idp.ap-southeast-1.amazonaws.com/ap-southeast-1_test"
	ClientID = "test-client-id"
)

// Signer mints RS256 tokens shaped like Cognito access tokens.
type Signer struct {
	Key *rsa.PrivateKey
}

func NewSigner(t *testing.T) *Signer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &Signer{Key: key}
}

// Keyfunc resolves every token to the signer's public key.
func (s *Signer) Keyfunc(*jwt.Token) (any, error) {
	return &s.Key.PublicKey, nil
}

// Claims returns valid access-token claims for subject.
func (s *Signer) Claims(subject string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":       subject,
		"iss":       Issuer,
		"client_id": ClientID,
		"token_use": "access",
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
	}
}

// Sign signs claims with the signer's key.
func (s *Signer) Sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.Key)
	require.NoError(t, err)
	return token
}

// Token returns a valid signed token for subject.
func (s *Signer) Token(t *testing.T, subject string) string {
	t.Helper()
	return s.Sign(t, s.Claims(subject))
}

// Bearer returns an Authorization header value for subject.
func (s *Signer) Bearer(t *testing.T, subject string) string {
	t.Helper()
	return "Bearer " + s.Token(t, subject)
}
