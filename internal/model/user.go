package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:50;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
}

// RecipeFavorite marks a recipe as one of a user's "Miams".
type RecipeFavorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uint      `gorm:"not null;index:idx_recipe_favorite,unique" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_recipe_favorite,unique" json:"user_id"`
}

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}
