package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petitplat/backend/internal/model"
)

func TestEnsureTagsExistIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	require.NoError(t, svc.EnsureTagsExist(ctx, []string{"Dessert"}, nil))
	require.NoError(t, svc.EnsureTagsExist(ctx, []string{"Dessert"}, nil))

	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Where("name = ?", "Dessert").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureTagsExistSkipsEmptyNames(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	require.NoError(t, svc.EnsureTagsExist(context.Background(), []string{"", "Plat"}, nil))

	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRelinkRecipeTagsReplacesWholeSet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	recipe := model.Recipe{Title: "Tarte"}
	require.NoError(t, db.Create(&recipe).Error)
	require.NoError(t, svc.EnsureTagsExist(ctx, []string{"A", "B"}, nil))

	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, []string{"A", "B"}))
	tags, err := svc.TagsForRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, tags)

	// Relinking with a smaller set leaves exactly that set, never a merge.
	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, []string{"A"}))
	tags, err = svc.TagsForRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, tags)
}

func TestRelinkRecipeTagsDropsUnknownNames(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	recipe := model.Recipe{Title: "Salade"}
	require.NoError(t, db.Create(&recipe).Error)
	require.NoError(t, svc.EnsureTagsExist(ctx, []string{"Connu"}, nil))

	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, []string{"Connu", "Inconnu"}))
	tags, err := svc.TagsForRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Connu"}, tags)
}

func TestRelinkRecipeTagsEmptySetClearsLinks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	recipe := model.Recipe{Title: "Riz"}
	require.NoError(t, db.Create(&recipe).Error)
	require.NoError(t, svc.EnsureTagsExist(ctx, []string{"X"}, nil))
	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, []string{"X"}))

	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, nil))
	tags, err := svc.TagsForRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagsForRecipesGroupsByRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	first := model.Recipe{Title: "Un"}
	second := model.Recipe{Title: "Deux"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, svc.EnsureTagsExist(ctx, []string{"A", "B"}, nil))
	require.NoError(t, svc.RelinkRecipeTags(ctx, first.ID, []string{"A", "B"}))
	require.NoError(t, svc.RelinkRecipeTags(ctx, second.ID, []string{"B"}))

	byRecipe, err := svc.TagsForRecipes(ctx, []uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, byRecipe[first.ID])
	assert.Equal(t, []string{"B"}, byRecipe[second.ID])
}

func TestDeleteTagRefusedWhileInUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	recipe := model.Recipe{Title: "Gratin"}
	require.NoError(t, db.Create(&recipe).Error)
	tag, err := svc.CreateTag(ctx, "Hiver", nil)
	require.NoError(t, err)
	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, []string{"Hiver"}))

	err = svc.DeleteTag(ctx, tag.ID)
	assert.ErrorIs(t, err, ErrTagInUse)

	// Orphan tags persist until deleted explicitly, then go away.
	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, nil))
	require.NoError(t, svc.DeleteTag(ctx, tag.ID))

	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRenameTagKeepsLinks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	recipe := model.Recipe{Title: "Soupe"}
	require.NoError(t, db.Create(&recipe).Error)
	tag, err := svc.CreateTag(ctx, "Automne", nil)
	require.NoError(t, err)
	require.NoError(t, svc.RelinkRecipeTags(ctx, recipe.ID, []string{"Automne"}))

	_, err = svc.RenameTag(ctx, tag.ID, "Saison")
	require.NoError(t, err)

	tags, err := svc.TagsForRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Saison"}, tags)
}
