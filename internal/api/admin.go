package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/petitplat/backend/internal/middleware"
	"github.com/petitplat/backend/internal/types"
)

// RegisterAdminRoutes exposes the back-office recipe moderation endpoints:
// the full catalog including drafts, and the publish/unpublish toggle.
func (h *RecipeHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin/recipes")
	admin.Use(middleware.AuthMiddleware(h.authService), middleware.AdminMiddleware(h.authService))
	{
		admin.GET("", h.ListAllRecipes)
		admin.PUT("/:id/status", h.SetRecipeStatus)
	}
}

// ListAllRecipes returns every recipe regardless of status, newest first.
func (h *RecipeHandler) ListAllRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("error listing recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing recipes"})
		return
	}

	views, err := h.views(c, recipes)
	if err != nil {
		log.Error().Err(err).Msg("error listing recipes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": views})
}

// SetRecipeStatus flips a recipe between draft and published.
func (h *RecipeHandler) SetRecipeStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error updating recipe status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating recipe status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": recipe.ID, "status": recipe.Status})
}
