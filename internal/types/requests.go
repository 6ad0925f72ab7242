package types

// RecipeRequest is the payload for creating or updating a recipe.
type RecipeRequest struct {
	Title       string           `json:"title" binding:"required"`
	ImagePrompt string           `json:"imagePrompt"`
	Ingredients []IngredientView `json:"ingredients"`
	Steps       []string         `json:"steps"`
	PrepTime    string           `json:"prepTime"`
	CookTime    string           `json:"cookTime"`
	Servings    int              `json:"servings" binding:"omitempty,min=1"`
	Tags        []string         `json:"tags"`
	Status      string           `json:"status" binding:"omitempty,oneof=draft published"`
}

// CommentRequest is the payload for posting a review. All three fields are
// required: an incomplete review is refused before any row is written.
type CommentRequest struct {
	User   string `json:"user" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
	Date   string `json:"date"`
}

// TagRequest is the payload for creating or renaming a vocabulary entry.
type TagRequest struct {
	Name string `json:"name" binding:"required"`
}

// StatusRequest is the payload for the admin publish/unpublish toggle.
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
