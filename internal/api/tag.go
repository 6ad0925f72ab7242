package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/petitplat/backend/internal/middleware"
	"github.com/petitplat/backend/internal/service"
	"github.com/petitplat/backend/internal/types"
)

type TagHandler struct {
	tagService  *service.TagService
	authService *service.AuthService
}

func NewTagHandler(tagService *service.TagService, authService *service.AuthService) *TagHandler {
	return &TagHandler{
		tagService:  tagService,
		authService: authService,
	}
}

func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tags", h.ListTags)

	admin := router.Group("/admin/tags")
	admin.Use(middleware.AuthMiddleware(h.authService), middleware.AdminMiddleware(h.authService))
	{
		admin.POST("", h.CreateTag)
		admin.PUT("/:id", h.RenameTag)
		admin.DELETE("/:id", h.DeleteTag)
	}
}

// ListTags returns the whole vocabulary, name-ordered.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("error listing tags")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error listing tags"})
		return
	}

	views := make([]types.TagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, types.NewTagView(t))
	}
	c.JSON(http.StatusOK, gin.H{"tags": views})
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req types.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := middleware.ViewerFrom(c)
	tag, err := h.tagService.CreateTag(c.Request.Context(), req.Name, &viewer.UserID)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("error creating tag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating tag"})
		return
	}

	c.JSON(http.StatusCreated, types.NewTagView(*tag))
}

func (h *TagHandler) RenameTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id"})
		return
	}

	var req types.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.RenameTag(c.Request.Context(), id, req.Name)
	if err != nil {
		log.Error().Err(err).Uint("tag_id", id).Msg("error renaming tag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error renaming tag"})
		return
	}

	c.JSON(http.StatusOK, types.NewTagView(*tag))
}

// DeleteTag removes a vocabulary entry; tags still in use are refused so the
// admin gets an explicit warning instead of broken links.
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id"})
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTagInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "tag is still used by recipes"})
			return
		}
		log.Error().Err(err).Uint("tag_id", id).Msg("error deleting tag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting tag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tag deleted", "id": id})
}
