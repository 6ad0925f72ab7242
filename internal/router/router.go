package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/petitplat/backend/config"
	"github.com/petitplat/backend/internal/api"
	"github.com/petitplat/backend/internal/database"
	"github.com/petitplat/backend/internal/middleware"
	"github.com/petitplat/backend/internal/service"
)

// SetupRouter wires services, middleware and routes into a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.AdminEmail)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewTagService(db)
	commentService := service.NewCommentService(db)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     10,
		KeyPrefix: "ratelimit:comments",
	})

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, tagService, commentService, authService)
	tagHandler := api.NewTagHandler(tagService, authService)
	commentHandler := api.NewCommentHandler(commentService, recipeService, rateLimiter)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
		recipeHandler.RegisterAdminRoutes(v1)
		tagHandler.RegisterRoutes(v1)
		commentHandler.RegisterRoutes(v1)
	}

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": "database unreachable"})
			return
		}
		status := gin.H{"status": "ok"}
		if redisClient != nil {
			if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
				status["redis"] = "down"
			}
		}
		c.JSON(http.StatusOK, status)
	})

	return router
}
