package middleware

import (
	"strings"

	"scancare/internal/delivery/http/response"
	"scancare/internal/domain/entity"
	"scancare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the authenticated
// identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(identityContextKey, identity)

		return next(c)
	}
}

// GetIdentity returns the authenticated identity set by Authenticate,
// or nil when the request carries no session.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, ok := c.Get(identityContextKey).(*entity.Identity)
	if !ok {
		return nil
	}

	return identity
}

// GetUserID returns the authenticated user's ID. The boolean is false
// when the request carries no session.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity := GetIdentity(c)
	if identity == nil {
		return uuid.Nil, false
	}

	return identity.ID, true
}
