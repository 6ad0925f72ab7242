package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/petitplat/backend/internal/model"
)

// frenchMonths are the short month names used for the display date.
var frenchMonths = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// CommentService handles recipe reviews.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListComments returns a recipe's comments newest first.
func (s *CommentService) ListComments(ctx context.Context, recipeID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CommentsForRecipes groups comments newest-first by recipe id.
func (s *CommentService) CommentsForRecipes(ctx context.Context, recipeIDs []uint) (map[uint][]model.Comment, error) {
	byRecipe := make(map[uint][]model.Comment)
	if len(recipeIDs) == 0 {
		return byRecipe, nil
	}

	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Where("recipe_id IN ?", recipeIDs).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		byRecipe[c.RecipeID] = append(byRecipe[c.RecipeID], c)
	}
	return byRecipe, nil
}

// AddComment appends a review to a recipe. The caller has already validated
// the fields; a missing date gets the French short form of today.
func (s *CommentService) AddComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if comment.Date == "" {
		comment.Date = FrenchShortDate(time.Now())
	}
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// FrenchShortDate formats a time the way comment dates are displayed,
// e.g. "2 janv.".
func FrenchShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), frenchMonths[t.Month()-1])
}

// AverageRating folds a comment list into a single display rating: 0 for an
// empty list, otherwise the mean rounded to one decimal place.
func AverageRating(comments []model.Comment) float64 {
	if len(comments) == 0 {
		return 0
	}
	sum := 0
	for _, c := range comments {
		sum += c.Rating
	}
	mean := float64(sum) / float64(len(comments))
	return math.Round(mean*10) / 10
}
