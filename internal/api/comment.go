package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/petitplat/backend/internal/middleware"
	"github.com/petitplat/backend/internal/model"
	"github.com/petitplat/backend/internal/service"
	"github.com/petitplat/backend/internal/types"
)

type CommentHandler struct {
	commentService *service.CommentService
	recipeService  *service.RecipeService
	rateLimiter    *middleware.RateLimiter
}

func NewCommentHandler(
	commentService *service.CommentService,
	recipeService *service.RecipeService,
	rateLimiter *middleware.RateLimiter,
) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		recipeService:  recipeService,
		rateLimiter:    rateLimiter,
	}
}

func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/recipes/:id/comments")
	{
		comments.GET("", h.ListComments)
		comments.POST("", h.rateLimiter.Middleware(), h.AddComment)
	}
}

// ListComments returns a recipe's reviews newest first, with the aggregate
// rating.
func (h *CommentHandler) ListComments(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error listing comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing comments"})
		return
	}

	views := make([]types.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, types.NewCommentView(comment))
	}
	c.JSON(http.StatusOK, gin.H{
		"comments":      views,
		"averageRating": service.AverageRating(comments),
	})
}

// AddComment appends a review. Name, text and a 1..5 rating are all
// required; an incomplete review never reaches the database.
func (h *CommentHandler) AddComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.recipeService.GetRecipe(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	comment := model.Comment{
		RecipeID: id,
		UserName: req.User,
		Rating:   req.Rating,
		Text:     req.Text,
		Date:     req.Date,
	}
	saved, err := h.commentService.AddComment(c.Request.Context(), &comment)
	if err != nil {
		log.Error().Err(err).Uint("recipe_id", id).Msg("error adding comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding comment"})
		return
	}

	c.JSON(http.StatusCreated, types.NewCommentView(*saved))
}
