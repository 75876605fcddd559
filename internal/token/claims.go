package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the fixed claim set carried by Mi Boleta session tokens. The
// registered claims hold sub/iat/exp; everything else the platform embeds is
// one of the three custom entries below.
type Claims struct {
	Role   string `json:"role,omitempty"`
	Name   string `json:"name,omitempty"`
	IDUser string `json:"idUser,omitempty"`
	jwt.RegisteredClaims
}

// Attributes are the caller-supplied custom claims at issue time.
type Attributes struct {
	Role   string
	Name   string
	IDUser string
}
