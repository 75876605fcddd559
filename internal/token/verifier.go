package token

import (
	"errors"

	"github.com/iamjuaness/mi-boleta/util"
	"go.uber.org/zap"
)

// Verifier validates inbound token strings for the request authorizer.
type Verifier struct {
	codec *Codec
}

func NewVerifier(codec *Codec) *Verifier {
	return &Verifier{codec: codec}
}

// Verify decodes the token and returns its claims. The error is
// ErrExpiredToken or ErrMalformedToken; callers must not treat the two as
// equivalent. Only the error kind and a token fingerprint are logged, never
// claim contents.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims, err := v.codec.Decode(tokenString)
	if err != nil {
		zap.L().Warn("Token verification failed",
			zap.String("kind", errorKind(err)),
			zap.String("tokenFingerprint", util.TokenFingerprint(tokenString)))
		return nil, err
	}
	return claims, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrExpiredToken):
		return "expired"
	case errors.Is(err, ErrMalformedToken):
		return "malformed"
	default:
		return "unknown"
	}
}
