package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petitplat/backend/internal/middleware"
	"github.com/petitplat/backend/internal/model"
	"github.com/petitplat/backend/internal/service"
)

const testAdminEmail = "admin@petitplat.fr"

// testEnv bundles the router and services backed by an in-memory database.
type testEnv struct {
	router      *gin.Engine
	db          *gorm.DB
	authService *service.AuthService
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.Comment{},
		&model.Tag{},
		&model.RecipeTag{},
		&model.RecipeFavorite{},
	))

	authService := service.NewAuthService(db, "test-secret", testAdminEmail)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewTagService(db)
	commentService := service.NewCommentService(db)

	// Nil redis client keeps the limiter in pass-through mode.
	rateLimiter := middleware.NewRateLimiter(nil, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     10,
		KeyPrefix: "ratelimit:comments",
	})

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		NewAuthHandler(authService).RegisterRoutes(v1)
		recipeHandler := NewRecipeHandler(recipeService, tagService, commentService, authService)
		recipeHandler.RegisterRoutes(v1)
		recipeHandler.RegisterAdminRoutes(v1)
		NewTagHandler(tagService, authService).RegisterRoutes(v1)
		NewCommentHandler(commentService, recipeService, rateLimiter).RegisterRoutes(v1)
	}

	return &testEnv{router: router, db: db, authService: authService}
}

// registerUser creates an account and returns its bearer token.
func (e *testEnv) registerUser(t *testing.T, email, username string) string {
	t.Helper()
	token, err := e.authService.Register(email, username, "secret123")
	require.NoError(t, err)
	return token
}

// request performs an HTTP request against the test router. A non-empty
// token is attached as a bearer header; a non-nil body is JSON-encoded.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
