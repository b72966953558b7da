package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies the bearer tokens the admin panel uses.
// Constructed once at startup with the server's signing key.
type TokenManager struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenManager(key []byte, exp time.Duration) *TokenManager {
	return &TokenManager{auth: jwtauth.New("HS256", key, nil), exp: exp}
}

// Auth exposes the underlying verifier for the router's jwtauth.Verifier
// middleware.
func (tm *TokenManager) Auth() *jwtauth.JWTAuth {
	return tm.auth
}

func (tm *TokenManager) Generate(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(tm.exp).Unix(),
		"iat":  time.Now().Unix(),
	}
	_, tokenString, err := tm.auth.Encode(claims)
	return tokenString, err
}

func GetUserIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["sub"].(string)
	if !ok || id == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return id, nil
}

func GetUserRoleFromClaims(claims map[string]interface{}) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
