package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer produces session tokens for just-authenticated principals. Issuing
// has no side effects: nothing is stored, the token string is the whole
// session.
type Issuer struct {
	codec    *Codec
	lifetime time.Duration
}

func NewIssuer(codec *Codec, lifetime time.Duration) *Issuer {
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	return &Issuer{codec: codec, lifetime: lifetime}
}

// Issue builds and signs a token for subject with iat = now and
// exp = now + lifetime. Returns ErrInvalidPrincipal for an empty subject;
// that is a programmer error and must not be papered over with a default.
func (i *Issuer) Issue(subject string, attrs Attributes) (string, error) {
	if subject == "" {
		return "", ErrInvalidPrincipal
	}

	now := time.Now()
	claims := &Claims{
		Role:   attrs.Role,
		Name:   attrs.Name,
		IDUser: attrs.IDUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	return i.codec.Encode(claims)
}
