package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(secret string, exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   secret,
		TokenExp:    exp,
		TokenIssuer: "lexbook.test",
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService("secret", time.Minute)

	token, expiresIn, err := svc.GenerateToken(42, "teacher")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if expiresIn != 60 {
		t.Fatalf("expected expiresIn 60, got %d", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if claims.UserID != 42 || claims.Role != "teacher" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestExpiredToken(t *testing.T) {
	svc := newTestService("secret", -time.Minute)

	token, _, err := svc.GenerateToken(1, "student")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestWrongSecret(t *testing.T) {
	issuer := newTestService("secret-a", time.Minute)
	verifier := newTestService("secret-b", time.Minute)

	token, _, err := issuer.GenerateToken(1, "teacher")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	_, err = verifier.ValidateToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestMalformedToken(t *testing.T) {
	svc := newTestService("secret", time.Minute)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateAndExtractClaims(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty header, got %v", err)
	}
	if _, err := ExtractBearerToken("abc.def.ghi"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat without Bearer prefix, got %v", err)
	}
}
