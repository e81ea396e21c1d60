package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for access token handling. Token issuance
// belongs to the external auth service; the core only needs to mint tokens for
// its own tooling and to validate the subject of inbound requests.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the given owner.
	GenerateAccessToken(ownerID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
