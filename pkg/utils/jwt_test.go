package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "owner@shop.test",
		[]string{"admin"}, []string{"manage-rates", "use-calculator"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner@shop.test", claims.Email)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Contains(t, claims.Permissions, "manage-rates")
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	parsed, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, -time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), "owner@shop.test", nil, nil)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, time.Hour)
	other := NewJWTManager("other-secret", time.Hour, time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "owner@shop.test", nil, nil)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsAccessTokenAsRefreshToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, time.Hour)

	refresh, err := manager.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	// A refresh token carries no access claims, so user-facing fields are zero
	claims, err := manager.ValidateAccessToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, claims.UserID)
	assert.Empty(t, claims.Roles)
}
