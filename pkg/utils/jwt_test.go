package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AdminID)
}

func TestExpiredTokenRejected(t *testing.T) {
	InitJWT("test-secret", -time.Minute)
	token, err := GenerateToken(42)
	require.NoError(t, err)

	InitJWT("test-secret", time.Hour)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	InitJWT("test-secret", time.Hour)
	token, err := GenerateToken(42)
	require.NoError(t, err)

	InitJWT("other-secret", time.Hour)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
