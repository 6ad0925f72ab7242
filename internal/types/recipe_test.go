package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/petitplat/backend/internal/model"
)

func TestNewRecipeView(t *testing.T) {
	owner := uuid.New()
	qty := 2.0
	rec := model.Recipe{
		ID:          7,
		Title:       "Poulet rôti",
		ImagePrompt: "Poulet rôti gourmet food warm photography",
		Ingredients: model.IngredientList{
			{Emoji: "🍗", Quantity: &qty, Unit: "pièce", Name: "Poulet"},
		},
		Steps:    model.StringList{"Préchauffer le four", "Enfourner"},
		PrepTime: "10 min",
		CookTime: "1h",
		Servings: 4,
		IsCustom: true,
		Status:   model.StatusPublished,
		UserID:   &owner,
	}
	comments := []model.Comment{
		{ID: 1, RecipeID: 7, UserName: "Léa", Rating: 5, Text: "Parfait", Date: "2 janv."},
	}

	v := NewRecipeView(rec, []string{"Plat", "Perso"}, comments)

	assert.Equal(t, uint(7), v.ID)
	assert.Equal(t, "Poulet rôti", v.Title)
	assert.Equal(t, []string{"Plat", "Perso"}, v.Tags)
	assert.Equal(t, []string{"Préchauffer le four", "Enfourner"}, v.Steps)
	assert.Equal(t, "10 min", v.PrepTime)
	assert.Equal(t, "1h", v.CookTime)
	assert.Equal(t, 4, v.Servings)
	assert.True(t, v.IsCustom)
	assert.Equal(t, model.StatusPublished, v.Status)
	assert.Equal(t, &owner, v.UserID)

	// Ingredient fields survive exactly.
	assert.Len(t, v.Ingredients, 1)
	assert.Equal(t, "🍗", v.Ingredients[0].Emoji)
	assert.Equal(t, 2.0, *v.Ingredients[0].Quantity)
	assert.Equal(t, "pièce", v.Ingredients[0].Unit)
	assert.Equal(t, "Poulet", v.Ingredients[0].Name)

	assert.Len(t, v.Comments, 1)
	assert.Equal(t, "Léa", v.Comments[0].User)
	assert.Equal(t, 5, v.Comments[0].Rating)
}

func TestNewRecipeViewWithoutTagsOrComments(t *testing.T) {
	v := NewRecipeView(model.Recipe{ID: 1, Title: "Riz"}, nil, nil)
	assert.NotNil(t, v.Tags)
	assert.Empty(t, v.Tags)
	assert.NotNil(t, v.Comments)
	assert.Empty(t, v.Comments)
}

func TestRecipeRecordRoundTrip(t *testing.T) {
	qty := 2.0
	req := RecipeRequest{
		Title:       "Poulet basquaise",
		ImagePrompt: "Poulet basquaise gourmet food warm photography",
		Ingredients: []IngredientView{
			{Emoji: "🍗", Quantity: &qty, Unit: "pièce", Name: "Poulet"},
		},
		Steps:    []string{"Faire revenir"},
		PrepTime: "15 min",
		CookTime: "45 min",
		Servings: 4,
		Status:   model.StatusDraft,
	}

	rec := RecipeRecord(req)
	assert.Equal(t, req.Title, rec.Title)
	assert.Equal(t, req.ImagePrompt, rec.ImagePrompt)
	assert.Equal(t, "Poulet", rec.Ingredients[0].Name)
	assert.Equal(t, 2.0, *rec.Ingredients[0].Quantity)
	assert.Equal(t, "pièce", rec.Ingredients[0].Unit)

	// Back to the client shape: every owned field survives.
	v := NewRecipeView(rec, nil, nil)
	assert.Equal(t, req.Title, v.Title)
	assert.Equal(t, req.Steps, v.Steps)
	assert.Equal(t, req.PrepTime, v.PrepTime)
	assert.Equal(t, req.CookTime, v.CookTime)
	assert.Equal(t, req.Servings, v.Servings)
	assert.Equal(t, 2.0, *v.Ingredients[0].Quantity)
	assert.Equal(t, "pièce", v.Ingredients[0].Unit)
}
