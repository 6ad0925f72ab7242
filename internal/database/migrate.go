package database

import (
	"gorm.io/gorm"

	"github.com/petitplat/backend/internal/model"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.Comment{},
		&model.Tag{},
		&model.RecipeTag{},
		&model.RecipeFavorite{},
	)
}
