package policy

import (
	"strings"

	"github.com/iamjuaness/mi-boleta/internal/model"
)

// Access is the protection category a rule assigns to its routes.
type Access int

const (
	// Public routes need no principal at all.
	Public Access = iota
	// AuthenticatedOnly routes accept any valid principal.
	AuthenticatedOnly
	// RoleRestricted routes require the principal to carry one of the
	// rule's roles.
	RoleRestricted
)

// Decision is the outcome of evaluating a request against the policy.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated: the route needs a principal and none was
	// established. Maps to 401 at the boundary.
	DenyUnauthenticated
	// DenyForbidden: a principal exists but lacks the required role.
	// Maps to 403 at the boundary.
	DenyForbidden
)

// Rule binds a method/path pattern to an access category. A pattern ending
// in "/**" matches the prefix before it and everything below; any other
// pattern matches exactly. An empty method matches every method.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
	Roles   []string
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if prefix, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Pattern
}

// Policy is a static, ordered rule table. It holds no mutable state, so a
// single instance serves all requests concurrently.
type Policy struct {
	rules []Rule
}

func New(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Decide evaluates (method, path, principal-or-absent) against the table.
// First matching rule wins. Routes no rule matches require authentication:
// the default fails closed.
func (p *Policy) Decide(method, path string, principal *model.Principal) Decision {
	for _, rule := range p.rules {
		if !rule.matches(method, path) {
			continue
		}
		return decide(rule, principal)
	}
	if principal == nil {
		return DenyUnauthenticated
	}
	return Allow
}

func decide(rule Rule, principal *model.Principal) Decision {
	switch rule.Access {
	case Public:
		return Allow
	case AuthenticatedOnly:
		if principal == nil {
			return DenyUnauthenticated
		}
		return Allow
	case RoleRestricted:
		if principal == nil {
			return DenyUnauthenticated
		}
		for _, role := range rule.Roles {
			if principal.HasRole(role) {
				return Allow
			}
		}
		return DenyForbidden
	default:
		return DenyUnauthenticated
	}
}
