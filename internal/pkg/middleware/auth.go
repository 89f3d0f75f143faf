package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/markazhub/markaz/internal/pkg/jwt"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// identityKey is the Echo context key the resolved identity is stored under
const identityKey = "identity"

// JWTAuthMiddleware verifies the bearer token and resolves its claims into
// a read-only identity on the request context. No database round trip.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Refresh tokens are not credentials for API access.
			if typ, ok := claims["typ"].(string); ok && typ == jwtpkg.TokenTypeRefresh {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			identity := jwtpkg.ResolveIdentity(claims)
			if identity.ID() == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set(identityKey, identity)
			c.Set("user_id", identity.ID())

			return next(c)
		}
	}
}

// RequireStaff rejects requests whose identity carries neither the staff
// nor the superuser flag.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFromContext(c)
			if identity == nil {
				return utils.UnauthorizedResponse(c, "")
			}
			if !identity.IsStaff() && !identity.IsSuperuser() {
				return utils.ForbiddenResponse(c, "Staff access required")
			}
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity resolved by JWTAuthMiddleware,
// or nil if the request is unauthenticated.
func IdentityFromContext(c echo.Context) *jwtpkg.Identity {
	identity, ok := c.Get(identityKey).(*jwtpkg.Identity)
	if !ok {
		return nil
	}
	return identity
}
