package helpers

import (
	"crypto/rand"
	"crypto/rsa"
	"notehub-server/global"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		os.Exit(1)
	}
	global.JwtKey = key
	global.JwtParseKey = &key.PublicKey
	os.Exit(m.Run())
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, sessionID, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "session-1", sessionID)
}

func TestParseJWTGarbage(t *testing.T) {
	_, _, err := ParseJWT("not-a-token")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	claims := jwt.MapClaims{}
	claims["id"] = "user-1"
	claims["sid"] = "session-1"
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(global.JwtKey)
	require.NoError(t, err)

	_, _, err = ParseJWT(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseJWTWrongKey(t *testing.T) {
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	claims["id"] = "user-1"
	claims["sid"] = "session-1"
	claims["exp"] = time.Now().Add(time.Minute).Unix()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(other)
	require.NoError(t, err)

	_, _, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestRandomTokenString(t *testing.T) {
	a, err := RandomTokenString(20)
	require.NoError(t, err)
	assert.Len(t, a, 40)

	b, err := RandomTokenString(20)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
