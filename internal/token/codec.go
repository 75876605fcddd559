package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Codec encodes and decodes HS256-signed session tokens with a single shared
// secret. The secret is injected once at construction and never mutated, so a
// Codec is safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Encode signs the claim set and returns the compact three-segment token
// string. Encoding is deterministic: the same claims always produce the same
// signature under the same secret.
func (c *Codec) Encode(claims *Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return tokenString, nil
}

// Decode parses and verifies a compact token string. It returns
// ErrExpiredToken when the signature is valid but exp has passed, and
// ErrMalformedToken for every structural problem: bad segment syntax, an
// algorithm other than HMAC, or a signature that does not match the secret.
// Claims are never returned alongside an error.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		// golang-jwt only validates claims after the signature checked out,
		// so an expiry error implies the token is authentic.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if !parsedToken.Valid {
		return nil, ErrMalformedToken
	}

	return claims, nil
}
