package utils_test

import (
	"testing"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", "ancião", testSecret, time.Hour, "church-event-app")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "ancião", claims.Cargo)
	assert.Equal(t, "church-event-app", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestGenerateJWT_NoExpiryForZeroDuration(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", "ancião", testSecret, 0, "church-event-app")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	// GenerateJWT refuses to set a past expiry, so sign one directly.
	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", "ancião", testSecret, time.Hour, "church-event-app")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	_, err := utils.ParseAndValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}
