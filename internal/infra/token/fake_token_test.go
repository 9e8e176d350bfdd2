package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeTokenService_GenerateAndDecode(t *testing.T) {
	svc := NewFakeTokenService()

	token, err := svc.Generate("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestFakeTokenService_GenerateEmptyEmail(t *testing.T) {
	svc := NewFakeTokenService()

	_, err := svc.Generate("")
	assert.Error(t, err)
}

func TestFakeTokenService_TokensDiffer(t *testing.T) {
	svc := NewFakeTokenService()

	first, err := svc.Generate("alice@example.com")
	require.NoError(t, err)
	second, err := svc.Generate("alice@example.com")
	require.NoError(t, err)

	// The random suffix keeps two logins from sharing a token.
	assert.NotEqual(t, first, second)
}

func TestFakeTokenService_DecodeRejectsGarbage(t *testing.T) {
	svc := NewFakeTokenService()

	// Not base64 at all.
	_, err := svc.Decode("!!!not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but no separator.
	_, err = svc.Decode(base64.StdEncoding.EncodeToString([]byte("no-separator")))
	assert.Error(t, err)

	// Valid base64 with an empty email part.
	_, err = svc.Decode(base64.StdEncoding.EncodeToString([]byte(":uuid-only")))
	assert.Error(t, err)
}

func TestFakeTokenService_Validate(t *testing.T) {
	svc := NewFakeTokenService()

	token, err := svc.Generate("alice@example.com")
	require.NoError(t, err)

	assert.True(t, svc.Validate(token))
	assert.False(t, svc.Validate("!!!not-base64!!!"))
}
