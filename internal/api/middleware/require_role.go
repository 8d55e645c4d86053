package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

// RequireRole must run after SessionAuth. A session with another role is
// rejected as unauthorized, matching the services' role checks.
func RequireRole(allowed ...models.UserRole) gin.HandlerFunc {
	allow := map[models.UserRole]struct{}{}
	for _, a := range allowed {
		allow[a] = struct{}{}
	}

	return func(c *gin.Context) {
		v, _ := c.Get(KeyRole)
		role, _ := v.(string)

		if _, ok := allow[models.UserRole(role)]; !ok {
			abort(c, utils.E(utils.CodeUnauthorized, "RequireRole", "your role cannot access this resource", nil))
			return
		}
		c.Next()
	}
}

func RequireEmployer() gin.HandlerFunc  { return RequireRole(models.RoleEmployer) }
func RequireJobSeeker() gin.HandlerFunc { return RequireRole(models.RoleJobSeeker) }
