package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	Username  string `json:"username"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT bound to the admin username and
// session id.
func GenerateToken(secret, username, sessionID string, ttl time.Duration) (string, error) {
	claims := &sessionClaims{
		Username:  username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token signature and expiry and returns the
// embedded username and session id.
func ParseToken(secret, tokenString string) (username, sessionID string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}

	if claims, ok := token.Claims.(*sessionClaims); ok && token.Valid {
		return claims.Username, claims.SessionID, nil
	}

	return "", "", jwt.ErrTokenInvalidClaims
}
