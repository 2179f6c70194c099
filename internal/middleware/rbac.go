package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
	"github.com/noah-isme/sma-club-registry-api/pkg/response"
)

// RequireRoles only lets users holding one of roles through.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "role "+string(user.Role)+" may not access this resource"))
			return
		}
		c.Next()
	}
}
