package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petitplat/backend/internal/model"
)

// RecipeService handles recipe persistence.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe inserts a new recipe and returns it with its assigned id.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies the given column changes. Ownership fields (user_id,
// is_custom) are never part of updates: they are fixed at creation.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, updates map[string]interface{}) (*model.Recipe, error) {
	delete(updates, "user_id")
	delete(updates, "is_custom")
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe together with its tag links and favorites.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&model.RecipeTag{}).Error; err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&model.RecipeFavorite{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}

// ListPublished returns published recipes newest first.
func (s *RecipeService) ListPublished(ctx context.Context) ([]model.Recipe, error) {
	return s.list(ctx, s.db.WithContext(ctx).Where("status = ?", model.StatusPublished))
}

// ListAll returns every recipe regardless of status, newest first. Used by
// the back office.
func (s *RecipeService) ListAll(ctx context.Context) ([]model.Recipe, error) {
	return s.list(ctx, s.db.WithContext(ctx))
}

func (s *RecipeService) list(ctx context.Context, query *gorm.DB) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SetStatus flips a recipe between draft and published.
func (s *RecipeService) SetStatus(ctx context.Context, id uint, status string) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// Favorite marks a recipe as a favorite of the user. Doing it twice is a
// no-op thanks to the unique pair index.
func (s *RecipeService) Favorite(ctx context.Context, recipeID uint, userID uuid.UUID) error {
	var existing model.RecipeFavorite
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	fav := model.RecipeFavorite{RecipeID: recipeID, UserID: userID}
	return s.db.WithContext(ctx).Create(&fav).Error
}

// Unfavorite removes the user's favorite mark from a recipe.
func (s *RecipeService) Unfavorite(ctx context.Context, recipeID uint, userID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&model.RecipeFavorite{}).Error
}

// FavoriteIDs returns the set of recipe ids the user has favorited.
func (s *RecipeService) FavoriteIDs(ctx context.Context, userID uuid.UUID) (map[uint]bool, error) {
	var favorites []model.RecipeFavorite
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	ids := make(map[uint]bool, len(favorites))
	for _, f := range favorites {
		ids[f.RecipeID] = true
	}
	return ids, nil
}
