package auth

import (
	"testing"
	"time"

	"mdesk/config"
	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestAccount() *entity.Account {
	return &entity.Account{
		ID:    uuid.New(),
		Name:  "Test Admin",
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	account := newTestAccount()

	accessToken, refreshToken, err := jwtService.GenerateTokens(account)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken, service.TokenTypeAccess)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, account.ID, accessClaims.AccountID)
	assert.Equal(t, account.Email, accessClaims.Subject)
	assert.Equal(t, entity.RoleAdmin.String(), accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, account.Email, refreshClaims.Subject)
	assert.Equal(t, uuid.Nil, refreshClaims.AccountID) // Refresh tokens carry the subject alone
	assert.Empty(t, refreshClaims.Role)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(newTestAccount())
	assert.NoError(t, err)

	// An access token must not pass where a refresh token is expected, and vice versa.
	claims, err := jwtService.ValidateToken(accessToken, service.TokenTypeRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateToken(refreshToken, service.TokenTypeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(newTestAccount())
	assert.NoError(t, err)

	tampered := accessToken[:len(accessToken)-2] + "xx"
	claims, err := jwtService.ValidateToken(tampered, service.TokenTypeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := &jwtService{
		accessSecret:  "test_access_secret_key_very_long_for_testing",
		refreshSecret: "test_refresh_secret_key_very_long_for_testing",
		accessTTL:     -time.Minute, // already expired at issue time
		refreshTTL:    time.Hour,
	}

	accessToken, _, err := jwtService.GenerateTokens(newTestAccount())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(accessToken, service.TokenTypeAccess)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_TokenDurations(t *testing.T) {
	// Defaults apply when the config omits TTLs.
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)
	assert.Equal(t, defaultRefreshTTL, jwtService.GetRefreshTokenDuration())

	// Configured TTLs take precedence.
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 48 * time.Hour,
	}
	jwtService, err = NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())
}
