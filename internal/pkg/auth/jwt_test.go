// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func jwtConfig(secret string, expiry time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "storefront-backend"
	cfg.JWT.Secret = secret
	cfg.JWT.AccessTokenExpiry = expiry
	return cfg
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(jwtConfig("test-secret", time.Hour))

	token, err := manager.GenerateAccessToken("user-1", "alex@example.com", "Alex")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
	assert.Equal(t, "Alex", claims.Name)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(jwtConfig("secret-a", time.Hour)).GenerateAccessToken("user-1", "a@example.com", "A")
	require.NoError(t, err)

	_, err = NewJWTManager(jwtConfig("secret-b", time.Hour)).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager(jwtConfig("test-secret", -time.Minute))

	token, err := manager.GenerateAccessToken("user-1", "a@example.com", "A")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	manager := NewJWTManager(jwtConfig("test-secret", time.Hour))

	_, err := manager.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "abc123", ExtractTokenFromHeader("bearer abc123"))
	assert.Empty(t, ExtractTokenFromHeader("abc123"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc123"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}
