package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/shared/constants"
)

// PrincipalFromContext returns the principal set by the auth middleware.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(constants.CtxPrincipal)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// RequireBackOffice aborts the request unless the caller is an admin or
// internal user.
func RequireBackOffice() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFromContext(c)
		if !ok || !p.Role.IsBackOffice() {
			c.JSON(403, gin.H{
				"error": "back office access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts the request unless the caller is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFromContext(c)
		if !ok || p.Role != RoleAdmin {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
