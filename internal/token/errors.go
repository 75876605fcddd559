package token

import "errors"

// Verification and issuance failures. Expired and malformed are distinct
// conditions on purpose: both end up as "unauthenticated" at the HTTP
// boundary, but operators and clients need to tell them apart.
var (
	// ErrMalformedToken covers syntactic problems, an unexpected signing
	// algorithm, and signature mismatches.
	ErrMalformedToken = errors.New("token is malformed or its signature does not match")

	// ErrExpiredToken means the signature checked out but exp has passed.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidPrincipal is returned when issuance is attempted for an
	// empty subject. Upstream input validation should make this unreachable.
	ErrInvalidPrincipal = errors.New("cannot issue a token for an empty subject")

	// ErrInvalidToken is the refresh-path failure: the presented token did
	// not verify, so no replacement is fabricated.
	ErrInvalidToken = errors.New("token did not verify, refresh aborted")
)
