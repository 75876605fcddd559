package model

const (
	// PrincipalKey is the gin context key under which the request authorizer
	// stores the authenticated principal.
	PrincipalKey = "principal"

	// AuthorityPrefix maps a raw role claim to its internal authority form,
	// e.g. role CLIENT becomes authority ROLE_CLIENT.
	AuthorityPrefix = "ROLE_"
)

// Principal is the request-scoped identity derived from a verified token.
// It is created once per inbound request and discarded with the response;
// it is never persisted or shared across requests.
type Principal struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}

// Authority returns the ROLE_-prefixed authorization token for the
// principal's role, or empty when the token carried no role claim.
func (p Principal) Authority() string {
	if p.Role == "" {
		return ""
	}
	return AuthorityPrefix + p.Role
}

// HasRole reports whether the principal's role matches the given raw role
// name (compared through the authority form).
func (p Principal) HasRole(role string) bool {
	return p.Authority() == AuthorityPrefix+role && role != ""
}
