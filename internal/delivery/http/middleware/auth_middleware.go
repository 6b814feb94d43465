package middleware

import (
	"strings"

	deliverycontext "mdesk/internal/delivery/context"
	"mdesk/internal/delivery/http/response"
	"mdesk/internal/domain/entity"
	"mdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests by validating the bearer access
// token and placing the resulting principal on the request context.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates the Authorization header and stores the
// authenticated principal on both the echo context and the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenService.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Access token is invalid or expired")
		}

		principal := entity.Principal{
			AccountID: claims.AccountID,
			Email:     claims.Subject,
			Role:      entity.Role(claims.Role),
		}

		c.Set(string(deliverycontext.KeyPrincipal), principal)

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole restricts a route to principals holding one of the given roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
			if !ok {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
			}

			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Insufficient permissions for this resource")
		}
	}
}

// RequireAdmin restricts a route to administrators.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleAdmin)
}

func extractBearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}

	return token, true
}
