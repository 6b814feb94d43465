package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mdesk/config"
	"mdesk/internal/domain/entity"
	domainerrors "mdesk/internal/domain/errors"
	"mdesk/internal/domain/service"
	"mdesk/internal/errors"
)

// Default token lifetimes, used when the config omits them.
const (
	defaultAccessTTL  = 4 * time.Hour
	defaultRefreshTTL = 72 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given account.
// The access token carries the account ID and role for stateless authorization;
// the refresh token carries the subject alone.
func (s *jwtService) GenerateTokens(account *entity.Account) (accessToken string, refreshToken string, err error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":        account.Email,
		"iat":        now.Unix(),
		"exp":        now.Add(s.accessTTL).Unix(),
		"type":       service.TokenTypeAccess,
		"account_id": account.ID.String(),
		"role":       account.Role.String(),
	}
	accessToken, err = s.sign(accessClaims, s.accessSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign access token")
	}

	refreshClaims := jwt.MapClaims{
		"sub":  account.Email,
		"iat":  now.Unix(),
		"exp":  now.Add(s.refreshTTL).Unix(),
		"type": service.TokenTypeRefresh,
	}
	refreshToken, err = s.sign(refreshClaims, s.refreshSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateToken parses and verifies a token string, then checks the type
// claim. Every failure collapses into ErrTokenInvalid so callers cannot
// distinguish a forged token from an expired one.
func (s *jwtService) ValidateToken(tokenString, expectedType string) (*service.Claims, error) {
	secret := s.accessSecret
	if expectedType == service.TokenTypeRefresh {
		secret = s.refreshSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != expectedType {
		return nil, domainerrors.ErrTokenInvalid
	}

	subject, _ := mapClaims["sub"].(string)
	if subject == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims := &service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}

	if rawID, ok := mapClaims["account_id"].(string); ok {
		accountID, err := uuid.Parse(rawID)
		if err != nil {
			return nil, domainerrors.ErrTokenInvalid
		}
		claims.AccountID = accountID
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// sign is a private helper to create an HS256 JWT from claims.
func (s *jwtService) sign(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
