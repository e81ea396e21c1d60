package auth

import (
	"testing"
	"time"

	"menuqr/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t)
	ownerID := uuid.New()

	tokenString, err := svc.GenerateAccessToken(ownerID, 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, ownerID.String(), claims["sub"])
}

func TestJWTService_ValidateToken_ExpiredToken(t *testing.T) {
	svc := newTestService(t)

	tokenString, err := svc.GenerateAccessToken(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	other := &config.Config{}
	other.SecretKey.Access = "another-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	tokenString, err := otherSvc.(*jwtService).GenerateAccessToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}
