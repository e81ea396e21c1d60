// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"menuqr/config"
	"menuqr/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Registration and login live in the external auth service;
// this implementation only needs to validate inbound access tokens and mint
// tokens for tooling and tests.
type jwtService struct {
	accessSecret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// GenerateAccessToken creates a signed access token for the given owner.
func (s *jwtService) GenerateAccessToken(ownerID uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": ownerID.String(),           // Subject (who the token is for)
		"iat": time.Now().Unix(),          // Issued At
		"exp": time.Now().Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
}
