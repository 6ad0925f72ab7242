package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/petitplat/backend/internal/types"
)

// ViewerKey is the gin context key holding the authenticated *types.Viewer.
const ViewerKey = "viewer"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens and stores
// the viewer snapshot in the request context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(ViewerKey, &types.Viewer{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

// OptionalAuthMiddleware resolves a viewer when a valid token is present but
// lets anonymous requests through. Invalid tokens are treated as anonymous.
func OptionalAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := validator.ValidateToken(parts[1]); err == nil {
				c.Set(ViewerKey, &types.Viewer{UserID: claims.UserID, Email: claims.Email})
			}
		}
		c.Next()
	}
}

// ViewerFrom extracts the viewer snapshot from the context, nil when the
// request is anonymous.
func ViewerFrom(c *gin.Context) *types.Viewer {
	v, exists := c.Get(ViewerKey)
	if !exists {
		return nil
	}
	viewer, ok := v.(*types.Viewer)
	if !ok {
		return nil
	}
	return viewer
}
