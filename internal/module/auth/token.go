package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the validated content of an access token.
type Claims struct {
	UserID    string
	ExpiresAt time.Time
}

// TokenService issues and validates signed access tokens.
type TokenService interface {
	Generate(userID string, expiry time.Duration) (string, time.Time, error)
	Parse(token string) (*Claims, error)
}

// jwtTokenService implements TokenService with HMAC-SHA256 signed JWTs.
type jwtTokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) TokenService {
	return &jwtTokenService{secret: []byte(secret)}
}

// Generate issues a token for the given user expiring after the given duration.
func (s *jwtTokenService) Generate(userID string, expiry time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse validates the token signature and expiry and returns its claims.
func (s *jwtTokenService) Parse(tokenString string) (*Claims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	parsed := &Claims{UserID: claims.Subject}
	if claims.ExpiresAt != nil {
		parsed.ExpiresAt = claims.ExpiresAt.Time
	}
	return parsed, nil
}
