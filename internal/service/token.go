package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of issued tokens. There is no refresh.
const TokenTTL = 365 * 24 * time.Hour

// Claims carried by access tokens
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for the given identity
func (s *TokenService) Issue(email, name string) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the claims
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
