// Package token implements the demo session token service.
//
// The token is base64("email:random-uuid"). It is reversible, unsigned and
// never expires; validation only checks the encoding. This is a placeholder
// that demonstrates the login/me/logout flow, not an authentication
// mechanism, and must not be reused where real trust is required.
package token

import (
	"encoding/base64"
	"strings"

	"munch/internal/domain/service"
	"munch/internal/errors"

	"github.com/google/uuid"
)

type fakeTokenService struct{}

// NewFakeTokenService is the constructor for the placeholder token service.
func NewFakeTokenService() service.TokenService {
	return &fakeTokenService{}
}

// Generate produces base64("email:uuid") for the given email.
func (s *fakeTokenService) Generate(email string) (string, error) {
	if email == "" {
		return "", errors.New("email must not be empty")
	}

	raw := email + ":" + uuid.New().String()

	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// Decode extracts the email part from a token.
func (s *fakeTokenService) Decode(token string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", errors.Wrap(err, "token is not valid base64")
	}

	email, _, found := strings.Cut(string(decoded), ":")
	if !found || email == "" {
		return "", errors.New("token payload is malformed")
	}

	return email, nil
}

// Validate reports whether the token decodes as base64. Mirrors the demo
// semantics: well-formed means valid, nothing else is checked.
func (s *fakeTokenService) Validate(token string) bool {
	_, err := base64.StdEncoding.DecodeString(token)

	return err == nil
}
