package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateAccessToken(secret, "5f4d7a")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := ParseAccessToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, "5f4d7a", subject)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken([]byte("secret-a"), "5f4d7a")
	assert.NoError(t, err)

	_, err = ParseAccessToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken([]byte("secret"), "not-a-token")
	assert.Error(t, err)
}
