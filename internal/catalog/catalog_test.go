package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/petitplat/backend/internal/types"
)

func sampleRecipes(owner uuid.UUID) []types.RecipeView {
	return []types.RecipeView{
		{
			ID:    1,
			Title: "Tarte aux pommes",
			Ingredients: []types.IngredientView{
				{Name: "pomme"}, {Name: "farine"},
			},
			Tags: []string{"Dessert", "Facile"},
		},
		{
			ID:    2,
			Title: "Poulet rôti",
			Ingredients: []types.IngredientView{
				{Name: "poulet"}, {Name: "beurre"},
			},
			Tags:     []string{"Plat"},
			IsCustom: true,
			UserID:   &owner,
		},
		{
			ID:    3,
			Title: "Salade niçoise",
			Ingredients: []types.IngredientView{
				{Name: "tomate"}, {Name: "thon"},
			},
			Tags: []string{"Facile", "Été"},
		},
	}
}

func ids(recipes []types.RecipeView) []uint {
	out := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterEmptySpecMatchesEverything(t *testing.T) {
	recipes := sampleRecipes(uuid.New())
	got := Filter(recipes, FilterSpec{View: ViewAll})
	assert.Equal(t, []uint{1, 2, 3}, ids(got))
}

func TestFilterSearchMatchesTitleOrIngredient(t *testing.T) {
	recipes := sampleRecipes(uuid.New())

	// Title match, case-insensitive.
	got := Filter(recipes, FilterSpec{Search: "TARTE"})
	assert.Equal(t, []uint{1}, ids(got))

	// Ingredient match.
	got = Filter(recipes, FilterSpec{Search: "thon"})
	assert.Equal(t, []uint{3}, ids(got))

	got = Filter(recipes, FilterSpec{Search: "introuvable"})
	assert.Empty(t, got)
}

func TestFilterViewModes(t *testing.T) {
	owner := uuid.New()
	recipes := sampleRecipes(owner)

	got := Filter(recipes, FilterSpec{View: ViewFavorites, FavoriteIDs: map[uint]bool{1: true, 3: true}})
	assert.Equal(t, []uint{1, 3}, ids(got))

	got = Filter(recipes, FilterSpec{View: ViewOwnCreations})
	assert.Equal(t, []uint{2}, ids(got))

	got = Filter(recipes, FilterSpec{View: ViewOwnedBy, ViewerID: &owner})
	assert.Equal(t, []uint{2}, ids(got))

	// Nobody signed in: the owned-by view matches nothing.
	got = Filter(recipes, FilterSpec{View: ViewOwnedBy})
	assert.Empty(t, got)
}

func TestFilterTagsMatchAll(t *testing.T) {
	recipes := sampleRecipes(uuid.New())

	got := Filter(recipes, FilterSpec{RequiredTags: []string{"Facile"}})
	assert.Equal(t, []uint{1, 3}, ids(got))

	// Must carry every required tag, not just one.
	got = Filter(recipes, FilterSpec{RequiredTags: []string{"Facile", "Dessert"}})
	assert.Equal(t, []uint{1}, ids(got))

	got = Filter(recipes, FilterSpec{RequiredTags: []string{"Facile", "Plat"}})
	assert.Empty(t, got)
}

func TestFilterEmptyTagSetDisablesTagFiltering(t *testing.T) {
	recipes := sampleRecipes(uuid.New())
	with := Filter(recipes, FilterSpec{RequiredTags: []string{}})
	without := Filter(recipes, FilterSpec{})
	assert.Equal(t, ids(without), ids(with))
}

func TestFilterIsIdempotent(t *testing.T) {
	recipes := sampleRecipes(uuid.New())
	spec := FilterSpec{Search: "e", RequiredTags: []string{"Facile"}}

	once := Filter(recipes, spec)
	twice := Filter(once, spec)
	assert.Equal(t, ids(once), ids(twice))
}

func TestFilterPreservesInputOrder(t *testing.T) {
	recipes := sampleRecipes(uuid.New())
	// Reverse the input; output must follow.
	reversed := []types.RecipeView{recipes[2], recipes[1], recipes[0]}
	got := Filter(reversed, FilterSpec{})
	assert.Equal(t, []uint{3, 2, 1}, ids(got))
}

func TestDistinctTags(t *testing.T) {
	recipes := sampleRecipes(uuid.New())
	assert.Equal(t, []string{"Dessert", "Facile", "Plat", "Été"}, DistinctTags(recipes))
}

func TestDistinctTagsEmpty(t *testing.T) {
	assert.Empty(t, DistinctTags(nil))
}
