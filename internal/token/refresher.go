package token

import (
	"fmt"
	"strings"
	"time"
)

// Refresher renews still-valid tokens that are close to expiring. Tokens with
// more than the refresh window remaining pass through untouched, so clients
// can call it on every response cycle.
type Refresher struct {
	verifier *Verifier
	issuer   *Issuer
	window   time.Duration
}

func NewRefresher(verifier *Verifier, issuer *Issuer, window time.Duration) *Refresher {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &Refresher{verifier: verifier, issuer: issuer, window: window}
}

// MaybeRefresh verifies the presented token and reissues it when its
// remaining lifetime is at or below the refresh window. Input arriving
// JSON-quoted is tolerated: surrounding quotes are stripped before parsing.
// A token that does not verify yields ErrInvalidToken; the caller decides
// whether to force a re-login.
//
// The renewed token carries only the subject. Custom claims (role, name,
// idUser) are intentionally not copied forward; clients relying on them must
// re-authenticate. Flagged for product review, preserved as-is for now.
func (r *Refresher) MaybeRefresh(tokenString string) (string, error) {
	tokenString = strings.Trim(tokenString, `"`)

	claims, err := r.verifier.Verify(tokenString)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if time.Until(claims.ExpiresAt.Time) > r.window {
		return tokenString, nil
	}

	return r.issuer.Issue(claims.Subject, Attributes{})
}
