package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag is an entry in the shared tag vocabulary. Names are globally unique
// and matched case-sensitively.
type Tag struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Name      string     `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`
}

// RecipeTag links a recipe to a tag. A recipe's link set is always replaced
// wholesale (delete then insert), never diffed.
type RecipeTag struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID uint `gorm:"not null;index:idx_recipe_tag,unique" json:"recipe_id"`
	TagID    uint `gorm:"not null;index:idx_recipe_tag,unique" json:"tag_id"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
