package helpers

import (
	Errors "errors"
	"notehub-server/global"
	"time"

	"github.com/golang-jwt/jwt"
)

// ErrTokenExpired marks an otherwise well-formed but stale token
var ErrTokenExpired = Errors.New("helpers: token expired")

// GenerateJWT generates a signed token carrying the user and session claims
func GenerateJWT(userID string, sessionID string) (string, error) {
	claims := jwt.MapClaims{}
	claims["id"] = userID
	claims["sid"] = sessionID
	claims["exp"] = time.Now().Add(global.AccessTokenDuration).Unix()
	jt := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return jt.SignedString(global.JwtKey)
}

// ParseJWT parses a token back to its user and session ids
func ParseJWT(jwtString string) (string, string, error) {

	token, err := jwt.Parse(jwtString, func(token *jwt.Token) (interface{}, error) {
		return global.JwtParseKey, nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors == jwt.ValidationErrorExpired {
			return "", "", ErrTokenExpired
		}
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", Errors.New("helpers: invalid claims")
	}

	userID, ok := claims["id"].(string)
	if !ok {
		return "", "", Errors.New("helpers: missing id claim")
	}
	sessionID, ok := claims["sid"].(string)
	if !ok {
		return "", "", Errors.New("helpers: missing sid claim")
	}

	return userID, sessionID, nil
}
