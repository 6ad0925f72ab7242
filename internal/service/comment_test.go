package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petitplat/backend/internal/model"
)

func TestAverageRatingEmpty(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]model.Comment{}))
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	comments := []model.Comment{
		{Rating: 5}, {Rating: 4}, {Rating: 4},
	}
	// 13/3 = 4.333... rounds to 4.3
	assert.Equal(t, 4.3, AverageRating(comments))

	comments = []model.Comment{{Rating: 5}, {Rating: 4}}
	assert.Equal(t, 4.5, AverageRating(comments))

	comments = []model.Comment{{Rating: 3}}
	assert.Equal(t, 3.0, AverageRating(comments))
}

func TestAddCommentDefaultsDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)

	recipe := model.Recipe{Title: "Crêpes"}
	require.NoError(t, db.Create(&recipe).Error)

	saved, err := svc.AddComment(context.Background(), &model.Comment{
		RecipeID: recipe.ID,
		UserName: "Léa",
		Rating:   5,
		Text:     "Excellent",
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.NotEmpty(t, saved.Date)
}

func TestAddCommentKeepsProvidedDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)

	recipe := model.Recipe{Title: "Quiche"}
	require.NoError(t, db.Create(&recipe).Error)

	saved, err := svc.AddComment(context.Background(), &model.Comment{
		RecipeID: recipe.ID,
		UserName: "Paul",
		Rating:   4,
		Text:     "Très bon",
		Date:     "3 juin",
	})
	require.NoError(t, err)
	assert.Equal(t, "3 juin", saved.Date)
}

func TestListCommentsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	recipe := model.Recipe{Title: "Ratatouille"}
	require.NoError(t, db.Create(&recipe).Error)

	old := model.Comment{RecipeID: recipe.ID, UserName: "Ana", Rating: 4, Text: "Bien", Date: "1 mai",
		CreatedAt: time.Now().Add(-time.Hour)}
	recent := model.Comment{RecipeID: recipe.ID, UserName: "Bob", Rating: 5, Text: "Top", Date: "2 mai",
		CreatedAt: time.Now()}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	comments, err := svc.ListComments(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Bob", comments[0].UserName)
	assert.Equal(t, "Ana", comments[1].UserName)
}

func TestFrenchShortDate(t *testing.T) {
	assert.Equal(t, "2 janv.", FrenchShortDate(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "15 août", FrenchShortDate(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)))
}
