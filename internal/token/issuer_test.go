package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssuer_IssueAndVerify(t *testing.T) {
	codec := newTestCodec()
	issuer := NewIssuer(codec, time.Hour)
	verifier := NewVerifier(codec)

	tokenString, err := issuer.Issue("u1@example.com", Attributes{
		Role:   "CLIENT",
		Name:   "Juan",
		IDUser: "42",
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := verifier.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "u1@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "CLIENT" || claims.Name != "Juan" || claims.IDUser != "42" {
		t.Fatalf("unexpected custom claims: %+v", claims)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != time.Hour {
		t.Fatalf("expected a fixed 1h lifetime, got %s", lifetime)
	}
	if time.Until(claims.ExpiresAt.Time) <= 59*time.Minute {
		t.Fatalf("expiry not anchored at issue time: %s", claims.ExpiresAt)
	}
}

func TestIssuer_EmptySubject(t *testing.T) {
	issuer := NewIssuer(newTestCodec(), time.Hour)

	if _, err := issuer.Issue("", Attributes{Role: "CLIENT"}); !errors.Is(err, ErrInvalidPrincipal) {
		t.Fatalf("expected ErrInvalidPrincipal, got %v", err)
	}
}
