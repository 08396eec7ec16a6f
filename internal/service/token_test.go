package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	tok, err := svc.Issue("a@x.io", "Ann")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "a@x.io" || claims.Name != "Ann" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != TokenTTL {
		t.Errorf("lifetime: got %v, want %v", got, TokenTTL)
	}
}

func TestTokenService_VerifyRejects(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewTokenService("test-secret")
	svc.now = func() time.Time { return issued }
	valid, err := svc.Issue("a@x.io", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewTokenService("other-secret")
	other.now = svc.now
	foreign, _ := other.Issue("a@x.io", "")

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@x.io"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"email": "a@x.io"}).
		SignedString([]byte("test-secret"))

	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).
		SignedString([]byte("test-secret"))

	tests := []struct {
		name  string
		token string
		now   time.Time
	}{
		{"empty", "", issued},
		{"garbage", "not.a.token", issued},
		{"wrong secret", foreign, issued},
		{"alg none", none, issued},
		{"other hmac alg", hs512, issued},
		{"no email", noEmail, issued},
		{"expired", valid, issued.Add(TokenTTL + time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			svc.now = func() time.Time { return now }
			if _, err := svc.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}

	svc.now = func() time.Time { return issued.Add(TokenTTL - time.Minute) }
	if _, err := svc.Verify(valid); err != nil {
		t.Errorf("token should still be valid just before expiry: %v", err)
	}
}
