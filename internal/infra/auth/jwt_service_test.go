package auth

import (
	"testing"
	"time"

	"scancare/config"
	"scancare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	identity := entity.Identity{
		ID:    uuid.New(),
		Email: "anna@example.com",
		Name:  "Anna",
	}

	token, err := jwtService.GenerateToken(identity, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, parsed.ID)
	assert.Equal(t, identity.Email, parsed.Email)
	assert.Equal(t, identity.Name, parsed.Name)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(entity.Identity{ID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret_one_very_long_for_testing_purposes"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret_two_very_long_for_testing_purposes"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(entity.Identity{ID: uuid.New()}, time.Minute)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_MissingSecretFails(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
