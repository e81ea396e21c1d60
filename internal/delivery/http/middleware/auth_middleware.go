// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"net/http"
	"strings"

	"menuqr/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ownerIDKey is the echo context key carrying the authenticated owner's ID.
const ownerIDKey = "ownerID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and resolves the owner ID from
// its subject claim.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		ownerIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Owner ID missing from token"})
		}
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid owner ID format in token"})
		}

		c.Set(ownerIDKey, ownerID)

		return next(c)
	}
}

// GetOwnerID extracts the authenticated owner's ID placed on the context by
// Authenticate.
func GetOwnerID(c echo.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(ownerIDKey).(uuid.UUID)

	return ownerID, ok
}
