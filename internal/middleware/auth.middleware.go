package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/internal/model"
	"github.com/iamjuaness/mi-boleta/internal/token"
	"go.uber.org/zap"
)

const (
	bearerPrefix = "Bearer "

	// authErrorKey stores the verification error for the authorize layer,
	// which turns an expired token into a distinct response status.
	authErrorKey = "authError"
)

// RequestAuthorizer extracts and verifies the bearer token on every inbound
// request and establishes the request-scoped principal. It never rejects a
// request itself: a missing, malformed or expired token just leaves the
// principal unset, and the route policy decides downstream. This keeps
// public routes reachable even with a bad token attached.
//
// The authorizer is immutable after construction; its only dependency is the
// verifier, so one instance serves all requests concurrently.
type RequestAuthorizer struct {
	verifier *token.Verifier
}

func NewRequestAuthorizer(verifier *token.Verifier) *RequestAuthorizer {
	return &RequestAuthorizer{verifier: verifier}
}

// Authenticate is the per-request authentication filter. It must run before
// Authorize in the middleware chain.
func (a *RequestAuthorizer) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			// No bearer token: proceed unauthenticated. A different scheme
			// (e.g. "Basic ...") is treated the same as an absent header.
			c.Next()
			return
		}

		claims, err := a.verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.Set(authErrorKey, err)
			c.Next()
			return
		}

		principal := model.Principal{
			Subject: claims.Subject,
			Role:    claims.Role,
		}
		c.Set(model.PrincipalKey, principal)

		zap.L().Debug("Request authenticated",
			zap.String("authority", principal.Authority()),
			zap.String("path", c.Request.URL.Path))

		c.Next()
	}
}

// PrincipalFromContext returns the principal established by the request
// authorizer, or nil when the request is unauthenticated.
func PrincipalFromContext(c *gin.Context) *model.Principal {
	val, exists := c.Get(model.PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := val.(model.Principal)
	if !ok {
		return nil
	}
	return &principal
}
