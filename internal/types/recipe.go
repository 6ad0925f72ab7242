// Package types holds the application-side representations exchanged with
// clients and the conversions to and from the storage models. The converters
// are mechanical field mappings: they validate nothing and touch no storage.
package types

import (
	"github.com/google/uuid"

	"github.com/petitplat/backend/internal/model"
)

// IngredientView mirrors model.Ingredient with the client field names.
type IngredientView struct {
	Emoji    string   `json:"emoji"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Name     string   `json:"ingredient"`
}

// CommentView is a comment as shown to clients.
type CommentView struct {
	ID     uint   `json:"id"`
	User   string `json:"user"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// RecipeView is a recipe as shown to clients: camelCase fields, tags merged
// in and comments embedded newest-first.
type RecipeView struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	ImagePrompt string           `json:"imagePrompt"`
	Ingredients []IngredientView `json:"ingredients"`
	Steps       []string         `json:"steps"`
	PrepTime    string           `json:"prepTime"`
	CookTime    string           `json:"cookTime"`
	Servings    int              `json:"servings"`
	Tags        []string         `json:"tags"`
	IsCustom    bool             `json:"isCustom"`
	Status      string           `json:"status"`
	UserID      *uuid.UUID       `json:"userId,omitempty"`
	Comments    []CommentView    `json:"comments"`
}

// TagView is a vocabulary entry as shown to clients.
type TagView struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	CreatedBy *uuid.UUID `json:"createdBy,omitempty"`
}

// NewRecipeView converts a stored recipe to its client shape. Tags live in a
// separate junction table, so the caller passes them in already resolved;
// the converter alone cannot round-trip them.
func NewRecipeView(rec model.Recipe, tags []string, comments []model.Comment) RecipeView {
	v := RecipeView{
		ID:          rec.ID,
		Title:       rec.Title,
		ImagePrompt: rec.ImagePrompt,
		Ingredients: make([]IngredientView, 0, len(rec.Ingredients)),
		Steps:       append([]string{}, rec.Steps...),
		PrepTime:    rec.PrepTime,
		CookTime:    rec.CookTime,
		Servings:    rec.Servings,
		Tags:        append([]string{}, tags...),
		IsCustom:    rec.IsCustom,
		Status:      rec.Status,
		UserID:      rec.UserID,
		Comments:    make([]CommentView, 0, len(comments)),
	}
	for _, ing := range rec.Ingredients {
		v.Ingredients = append(v.Ingredients, IngredientView(ing))
	}
	for _, c := range comments {
		v.Comments = append(v.Comments, NewCommentView(c))
	}
	return v
}

// NewCommentView converts a stored comment to its client shape.
func NewCommentView(c model.Comment) CommentView {
	return CommentView{
		ID:     c.ID,
		User:   c.UserName,
		Rating: c.Rating,
		Text:   c.Text,
		Date:   c.Date,
	}
}

// NewTagView converts a stored tag to its client shape.
func NewTagView(t model.Tag) TagView {
	return TagView{
		ID:        t.ID,
		Name:      t.Name,
		CreatedBy: t.CreatedBy,
	}
}

// RecipeRecord builds a storage row from a client request. Ingredient emojis
// are expected to be set already; tags are linked separately by the caller.
func RecipeRecord(req RecipeRequest) model.Recipe {
	rec := model.Recipe{
		Title:       req.Title,
		ImagePrompt: req.ImagePrompt,
		Ingredients: make(model.IngredientList, 0, len(req.Ingredients)),
		Steps:       model.StringList(req.Steps),
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Status:      req.Status,
	}
	for _, ing := range req.Ingredients {
		rec.Ingredients = append(rec.Ingredients, model.Ingredient(ing))
	}
	return rec
}
