package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petitplat/backend/internal/types"
)

// AdminChecker decides whether a viewer holds the configured admin address.
type AdminChecker interface {
	IsAdmin(viewer *types.Viewer) bool
}

// AdminMiddleware rejects requests whose viewer is not the admin account.
// Runs after AuthMiddleware.
func AdminMiddleware(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := ViewerFrom(c)
		if viewer == nil || !checker.IsAdmin(viewer) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
