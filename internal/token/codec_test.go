package token

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestCodec() *Codec {
	return NewCodec([]byte(testSecret))
}

func encodeWithExpiry(t *testing.T, codec *Codec, subject string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	tokenString, err := codec.Encode(&Claims{
		Role:   "CLIENT",
		Name:   "Juan",
		IDUser: "42",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return tokenString
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec()

	tokenString := encodeWithExpiry(t, codec, "u1@example.com", time.Hour)
	if strings.Count(tokenString, ".") != 2 {
		t.Fatalf("expected compact three-segment token, got %q", tokenString)
	}

	claims, err := codec.Decode(tokenString)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if claims.Subject != "u1@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "CLIENT" || claims.Name != "Juan" || claims.IDUser != "42" {
		t.Fatalf("custom claims did not survive the round trip: %+v", claims)
	}
}

func TestCodec_Deterministic(t *testing.T) {
	codec := newTestCodec()

	now := time.Now().Truncate(time.Second)
	claims := &Claims{
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@example.com",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	first, err := codec.Encode(claims)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := codec.Encode(claims)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if first != second {
		t.Fatalf("same claims produced different tokens:\n%s\n%s", first, second)
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := newTestCodec()

	tokenString := encodeWithExpiry(t, codec, "u1@example.com", -time.Second)

	_, err := codec.Decode(tokenString)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
	if errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expired token must not also report malformed: %v", err)
	}
}

func TestCodec_TamperedSegments(t *testing.T) {
	codec := newTestCodec()
	tokenString := encodeWithExpiry(t, codec, "u1@example.com", time.Hour)
	parts := strings.Split(tokenString, ".")

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == 'A' {
			b[0] = 'B'
		} else {
			b[0] = 'A'
		}
		return string(b)
	}

	cases := map[string]string{
		"payload":   parts[0] + "." + flip(parts[1]) + "." + parts[2],
		"signature": parts[0] + "." + parts[1] + "." + flip(parts[2]),
		"truncated": parts[0] + "." + parts[1],
		"garbage":   "not-a-token",
		"empty":     "",
	}

	for name, mutated := range cases {
		if _, err := codec.Decode(mutated); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("%s: expected ErrMalformedToken, got %v", name, err)
		}
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	signer := newTestCodec()
	tokenString := encodeWithExpiry(t, signer, "u1@example.com", time.Hour)

	other := NewCodec([]byte("ffffffffffffffffffffffffffffffff"))
	if _, err := other.Decode(tokenString); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken under a different secret, got %v", err)
	}
}

func TestCodec_RejectsUnsignedAlgorithm(t *testing.T) {
	codec := newTestCodec()

	// Hand-built token with alg "none" and an empty signature segment.
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"u1","exp":4102444800}`))
	unsigned := header + "." + payload + "."

	if _, err := codec.Decode(unsigned); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for alg none, got %v", err)
	}
}

func TestCodec_RequiresExpiry(t *testing.T) {
	codec := newTestCodec()

	tokenString, err := codec.Encode(&Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := codec.Decode(tokenString); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for a token without exp, got %v", err)
	}
}
