package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petitplat/backend/internal/model"
)

// ErrTagInUse is returned when deleting a tag still linked to recipes.
var ErrTagInUse = errors.New("tag is used by at least one recipe")

// TagService maintains the shared tag vocabulary and the recipe-tag links.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// EnsureTagsExist upserts every name into the vocabulary. Inserting a name
// that already exists is a no-op, not an error, so the call is idempotent.
func (s *TagService) EnsureTagsExist(ctx context.Context, names []string, createdBy *uuid.UUID) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		tag := model.Tag{Name: name, CreatedBy: createdBy}
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&tag).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// RelinkRecipeTags replaces the recipe's tag associations with the given
// names. Names without a vocabulary row are silently dropped. The existing
// links are deleted and the new set bulk-inserted without a transaction:
// a concurrent reader can transiently see the recipe with no tags, which is
// an accepted tradeoff of the replace-all strategy.
func (s *TagService) RelinkRecipeTags(ctx context.Context, recipeID uint, names []string) error {
	var tags []model.Tag
	if len(names) > 0 {
		if err := s.db.WithContext(ctx).Where("name IN ?", names).Find(&tags).Error; err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&model.RecipeTag{}).Error; err != nil {
		return err
	}

	if len(tags) == 0 {
		return nil
	}
	links := make([]model.RecipeTag, 0, len(tags))
	for _, t := range tags {
		links = append(links, model.RecipeTag{RecipeID: recipeID, TagID: t.ID})
	}
	return s.db.WithContext(ctx).Create(&links).Error
}

// TagsForRecipe returns the tag names linked to one recipe.
func (s *TagService) TagsForRecipe(ctx context.Context, recipeID uint) ([]string, error) {
	byRecipe, err := s.TagsForRecipes(ctx, []uint{recipeID})
	if err != nil {
		return nil, err
	}
	return byRecipe[recipeID], nil
}

// TagsForRecipes resolves the tag names for a set of recipes in one query,
// keyed by recipe id. Recipes without links are absent from the map.
func (s *TagService) TagsForRecipes(ctx context.Context, recipeIDs []uint) (map[uint][]string, error) {
	byRecipe := make(map[uint][]string)
	if len(recipeIDs) == 0 {
		return byRecipe, nil
	}

	var rows []struct {
		RecipeID uint
		Name     string
	}
	err := s.db.WithContext(ctx).
		Table("recipe_tags").
		Select("recipe_tags.recipe_id, tags.name").
		Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
		Where("recipe_tags.recipe_id IN ?", recipeIDs).
		Order("tags.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		byRecipe[row.RecipeID] = append(byRecipe[row.RecipeID], row.Name)
	}
	return byRecipe, nil
}

// ListTags returns the whole vocabulary ordered by name.
func (s *TagService) ListTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := s.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag adds one name to the vocabulary, failing on duplicates.
func (s *TagService) CreateTag(ctx context.Context, name string, createdBy *uuid.UUID) (*model.Tag, error) {
	tag := model.Tag{Name: name, CreatedBy: createdBy}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// RenameTag changes a vocabulary entry's name. Linked recipes follow along
// since links reference the tag id.
func (s *TagService) RenameTag(ctx context.Context, id uint, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&tag).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a vocabulary entry. Tags still linked to recipes are
// refused with ErrTagInUse; orphan tags persist until deleted here.
func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.RecipeTag{}).Where("tag_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrTagInUse
	}
	return s.db.WithContext(ctx).Delete(&model.Tag{}, "id = ?", id).Error
}
