// internal/pkg/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-test"},
		Admin: config.AdminConfig{
			Email:             "owner@example.com",
			JWTSecret:         "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAdminToken("owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())
	token, err := manager.GenerateAdminToken("owner@example.com")
	require.NoError(t, err)

	other := testConfig()
	other.Admin.JWTSecret = "ffffffffffffffffffffffffffffffff"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.Admin.AccessTokenExpiry = -time.Minute
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateAdminToken("owner@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	hash, err := manager.HashPassword("Magnolia!Thorn9")
	require.NoError(t, err)
	assert.NotEqual(t, "Magnolia!Thorn9", hash)

	assert.NoError(t, manager.VerifyPassword("Magnolia!Thorn9", hash))
	assert.Error(t, manager.VerifyPassword("wrong-password", hash))
}

func TestPasswordTooShort(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	_, err := manager.HashPassword("short")
	assert.Error(t, err)
}
