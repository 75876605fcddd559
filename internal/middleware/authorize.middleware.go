package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/internal/constant"
	"github.com/iamjuaness/mi-boleta/internal/policy"
	"github.com/iamjuaness/mi-boleta/internal/token"
	"go.uber.org/zap"
)

// Authorize enforces the route policy using the principal (or its absence)
// established by the RequestAuthorizer. Requests to protected routes without
// a principal get 401 (or 419 when the presented token had merely expired,
// so clients can refresh instead of re-logging in); requests with a
// principal lacking the required role get 403.
func Authorize(p *policy.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)

		switch p.Decide(c.Request.Method, c.Request.URL.Path, principal) {
		case policy.Allow:
			c.Next()

		case policy.DenyForbidden:
			zap.L().Warn("Access denied",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("authority", principal.Authority()))
			c.AbortWithStatusJSON(http.StatusForbidden, constant.FORBIDDEN)

		default:
			if err, exists := c.Get(authErrorKey); exists {
				if verr, ok := err.(error); ok && errors.Is(verr, token.ErrExpiredToken) {
					c.AbortWithStatusJSON(constant.StatusTokenExpired, constant.TOKEN_EXPIRED)
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, constant.UNAUTHORIZED)
		}
	}
}
