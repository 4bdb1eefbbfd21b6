package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequireRole rejects requests whose token role differs from requiredRole.
// It must run after OAuth2Auth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
			return
		}

		userRole := c.GetString(ContextUserRole)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				models.NewAPIError(models.ErrForbidden, "User role not found in token"))
			return
		}

		if userRole != requiredRole {
			log.WithFields(log.Fields{
				"user_id":       userID,
				"user_role":     userRole,
				"required_role": requiredRole,
				"path":          c.FullPath(),
			}).Warn("Insufficient permissions")
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden,
				"Insufficient permissions", map[string]interface{}{
					"required_role": requiredRole,
					"user_role":     userRole,
				}))
			return
		}

		c.Next()
	}
}
