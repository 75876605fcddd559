package policy

import (
	"net/http"

	"github.com/iamjuaness/mi-boleta/internal/user"
)

// Routes is the Mi Boleta auth-service route table. Login, refresh and the
// operational endpoints are open; the admin surface needs the ADMIN role;
// everything the table does not mention falls back to authenticated-only.
func Routes() *Policy {
	return New(
		Rule{Method: http.MethodPost, Pattern: "/api/auth/login", Access: Public},
		Rule{Method: http.MethodPost, Pattern: "/api/auth/refresh", Access: Public},
		Rule{Pattern: "/health", Access: Public},
		Rule{Pattern: "/metrics", Access: Public},
		Rule{Pattern: "/api/swagger/**", Access: Public},
		Rule{Pattern: "/api/auth/me", Access: AuthenticatedOnly},
		Rule{Pattern: "/api/admin/**", Access: RoleRestricted, Roles: []string{user.RoleAdmin}},
		Rule{Pattern: "/api/cart/**", Access: RoleRestricted, Roles: []string{user.RoleClient}},
		Rule{Method: http.MethodGet, Pattern: "/api/events/**", Access: Public},
		Rule{Pattern: "/api/events/**", Access: RoleRestricted, Roles: []string{user.RoleAdmin}},
	)
}
