package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(7, "test@example.com", model.RoleInstructor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, model.RoleInstructor, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_UniqueTokensPerLogin(t *testing.T) {
	svc := NewJWTService("test-secret")

	first, err := svc.GenerateToken(7, "test@example.com", model.RoleStudent)
	require.NoError(t, err)
	second, err := svc.GenerateToken(7, "test@example.com", model.RoleStudent)
	require.NoError(t, err)

	// The JTI makes every minted token distinct.
	assert.NotEqual(t, first, second)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(7, "test@example.com", model.RoleStudent)
	require.NoError(t, err)

	claims, err := NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	claims, err := NewJWTService("test-secret").ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
