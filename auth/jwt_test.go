package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talenthub/backend/config"
	"github.com/talenthub/backend/models"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()
	user := &models.User{
		ID:    "user-1",
		Email: "jane@example.com",
		Role:  models.RoleRecruiter,
	}

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, models.RoleRecruiter, claims.Role)
	assert.Equal(t, "talenthub", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(&models.User{ID: "user-1"})
	assert.NoError(t, err)

	other := NewJWTService(&config.Config{JWTSecret: "different-secret", JWTExpiryHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := testJWTService().ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
