package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/petitplat/backend/internal/catalog"
	"github.com/petitplat/backend/internal/emoji"
	"github.com/petitplat/backend/internal/middleware"
	"github.com/petitplat/backend/internal/model"
	"github.com/petitplat/backend/internal/service"
	"github.com/petitplat/backend/internal/types"
)

type RecipeHandler struct {
	recipeService  *service.RecipeService
	tagService     *service.TagService
	commentService *service.CommentService
	authService    *service.AuthService
}

func NewRecipeHandler(
	recipeService *service.RecipeService,
	tagService *service.TagService,
	commentService *service.CommentService,
	authService *service.AuthService,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:  recipeService,
		tagService:     tagService,
		commentService: commentService,
		authService:    authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListRecipes)
		recipes.GET("/tags", h.ListDistinctTags)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.authService), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteRecipe)
		recipes.POST("/:id/favorite", middleware.AuthMiddleware(h.authService), h.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", middleware.AuthMiddleware(h.authService), h.UnfavoriteRecipe)
	}
}

// views assembles client recipe views: tags and comments live in their own
// tables and are merged here, not in the converter.
func (h *RecipeHandler) views(c *gin.Context, recipes []model.Recipe) ([]types.RecipeView, error) {
	ids := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}

	tagsByRecipe, err := h.tagService.TagsForRecipes(c.Request.Context(), ids)
	if err != nil {
		return nil, err
	}
	commentsByRecipe, err := h.commentService.CommentsForRecipes(c.Request.Context(), ids)
	if err != nil {
		return nil, err
	}

	views := make([]types.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, types.NewRecipeView(r, tagsByRecipe[r.ID], commentsByRecipe[r.ID]))
	}
	return views, nil
}

// ListRecipes returns the published catalog, run through the filter engine
// when q, view or tags query parameters are present.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListPublished(c.Request.Context())
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

	spec := catalog.FilterSpec{
		Search: c.Query("q"),
		View:   catalog.ViewAll,
	}
	if tags := c.Query("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				spec.RequiredTags = append(spec.RequiredTags, t)
			}
		}
	}

	viewer := middleware.ViewerFrom(c)
	if viewer != nil {
		spec.ViewerID = &viewer.UserID
	}
	switch c.Query("view") {
	case "favorites":
		spec.View = catalog.ViewFavorites
		if viewer != nil {
			favs, err := h.recipeService.FavoriteIDs(c.Request.Context(), viewer.UserID)
			if err != nil {
				log.Error().Err(err).Msg("error listing recipes")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing recipes"})
				return
			}
			spec.FavoriteIDs = favs
		}
	case "custom":
		spec.View = catalog.ViewOwnCreations
	case "mine":
		spec.View = catalog.ViewOwnedBy
	}

	c.JSON(http.StatusOK, gin.H{"recipes": catalog.Filter(views, spec)})
}

// ListDistinctTags returns the tag vocabulary actually used by published
// recipes, for the filter pills.
func (h *RecipeHandler) ListDistinctTags(c *gin.Context) {
	recipes, err := h.recipeService.ListPublished(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("error listing tags")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing tags"})
		return
	}
	views, err := h.views(c, recipes)
	if err != nil {
		log.Error().Err(err).Msg("error listing tags")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing tags"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": catalog.DistinctTags(views)})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	views, err := h.views(c, []model.Recipe{*recipe})
	if err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error fetching recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching recipe"})
		return
	}
	c.JSON(http.StatusOK, views[0])
}

// CreateRecipe persists a submitted recipe. Empty ingredient rows are
// dropped and emojis derived server-side. Tag upsert and linking run after
// the insert; if linking fails the recipe stays without tags (no rollback)
// and the error is reported.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := middleware.ViewerFrom(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe := types.RecipeRecord(req)
	recipe.Ingredients = cleanIngredients(req.Ingredients)
	if recipe.ImagePrompt == "" {
		recipe.ImagePrompt = req.Title + " gourmet food warm photography"
	}
	if recipe.Servings == 0 {
		recipe.Servings = 2
	}
	if recipe.Status == "" {
		recipe.Status = model.StatusDraft
	}
	recipe.IsCustom = true
	recipe.UserID = &viewer.UserID

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		log.Error().Err(err).Msg("error saving recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving recipe"})
		return
	}

	if err := h.linkTags(c, created.ID, req.Tags, viewer); err != nil {
		// Recipe row is already in; surface the partial failure instead of
		// rolling back.
		log.Error().Err(err).Uint("recipe_id", created.ID).Msg("error linking tags")
		c.JSON(http.StatusCreated, gin.H{
			"recipe":  types.NewRecipeView(*created, nil, nil),
			"warning": "recipe saved but tags could not be linked",
		})
		return
	}

	tags, _ := h.tagService.TagsForRecipe(c.Request.Context(), created.ID)
	c.JSON(http.StatusCreated, gin.H{"recipe": types.NewRecipeView(*created, tags, nil)})
}

func (h *RecipeHandler) linkTags(c *gin.Context, recipeID uint, names []string, viewer *types.Viewer) error {
	if err := h.tagService.EnsureTagsExist(c.Request.Context(), names, &viewer.UserID); err != nil {
		return err
	}
	return h.tagService.RelinkRecipeTags(c.Request.Context(), recipeID, names)
}

// UpdateRecipe edits a recipe's content. Ownership never changes here.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	viewer := middleware.ViewerFrom(c)
	if !h.authService.CanEdit(viewer, recipe) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to edit this recipe"})
		return
	}

	updates := map[string]interface{}{
		"title":        req.Title,
		"image_prompt": req.ImagePrompt,
		"ingredients":  cleanIngredients(req.Ingredients),
		"steps":        model.StringList(req.Steps),
		"prep_time":    req.PrepTime,
		"cook_time":    req.CookTime,
	}
	if req.ImagePrompt == "" {
		updates["image_prompt"] = req.Title + " gourmet food warm photography"
	}
	if req.Servings > 0 {
		updates["servings"] = req.Servings
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	updated, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, updates)
	if err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error saving recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving recipe"})
		return
	}

	if err := h.linkTags(c, id, req.Tags, viewer); err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error linking tags")
		c.JSON(http.StatusOK, gin.H{
			"recipe":  types.NewRecipeView(*updated, nil, nil),
			"warning": "recipe saved but tags could not be linked",
		})
		return
	}

	views, err := h.views(c, []model.Recipe{*updated})
	if err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error fetching recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": views[0]})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	if !h.authService.CanEdit(middleware.ViewerFrom(c), recipe) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to delete this recipe"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error deleting recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted", "id": id})
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	viewer := middleware.ViewerFrom(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.recipeService.Favorite(c.Request.Context(), id, viewer.UserID); err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error favoriting recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error favoriting recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe favorited", "id": id})
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	viewer := middleware.ViewerFrom(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.recipeService.Unfavorite(c.Request.Context(), id, viewer.UserID); err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error unfavoriting recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error unfavoriting recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe unfavorited", "id": id})
}

// cleanIngredients drops rows with an empty name and derives each emoji
// from the trimmed name.
func cleanIngredients(ingredients []types.IngredientView) model.IngredientList {
	out := make(model.IngredientList, 0, len(ingredients))
	for _, ing := range ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		out = append(out, model.Ingredient{
			Emoji:    emoji.Classify(name),
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Name:     name,
		})
	}
	return out
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
