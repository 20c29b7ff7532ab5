package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and verifies the bearer tokens the API runs on.
// The signing key and lifetime are injected at construction; there is no
// package-level state.
type TokenManager struct {
	auth   *jwtauth.JWTAuth
	expiry time.Duration
}

func NewTokenManager(key []byte, expiry time.Duration) *TokenManager {
	return &TokenManager{
		auth:   jwtauth.New("HS256", key, nil),
		expiry: expiry,
	}
}

// JWTAuth exposes the underlying verifier for the router middleware.
func (tm *TokenManager) JWTAuth() *jwtauth.JWTAuth {
	return tm.auth
}

func (tm *TokenManager) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(tm.expiry).Unix(),
		"iat": now.Unix(),
		"jti": uuid.NewString(),
	}
	_, tokenString, err := tm.auth.Encode(claims)
	return tokenString, err
}

// GetSubjectFromClaims extracts the username a verified token was issued to.
func GetSubjectFromClaims(claims jwt.MapClaims) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return sub, nil
}
