package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenManager() *TokenManager {
	return NewTokenManager(JWTConfig{
		AccessSecret:       "access-secret-for-tests",
		RefreshSecret:      "refresh-secret-for-tests",
		AccessExpiryHours:  1,
		RefreshExpiryHours: 24,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testTokenManager()
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "a@example.com")
	require.NoError(t, err)

	claims, err := m.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := testTokenManager()
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID, "a@example.com")
	require.NoError(t, err)

	claims, err := m.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	m := testTokenManager()

	refresh, err := m.GenerateRefreshToken(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(refresh)
	assert.Error(t, err)
}

func TestAccessTokenRejectedAsRefreshToken(t *testing.T) {
	m := testTokenManager()

	access, err := m.GenerateAccessToken(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = m.VerifyRefreshToken(access)
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := testTokenManager()

	token, err := m.GenerateAccessToken(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(token + "x")
	assert.Error(t, err)

	_, err = m.VerifyAccessToken("not.a.token")
	assert.Error(t, err)
}
