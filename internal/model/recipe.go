package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Recipe publication statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Ingredient is one line of a recipe's ingredient list. Emoji is derived
// from the name at save time, never entered by the user.
type Ingredient struct {
	Emoji    string   `json:"emoji"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Name     string   `json:"ingredient"`
}

// IngredientList is a custom type for handling ingredient arrays in JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// StringList is a custom type for handling string arrays in JSONB
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Recipe is the stored recipe row. Tags are not inline here; they live in
// the recipe_tags junction table and are merged in by the caller.
// IsCustom and UserID are set at creation and never change afterwards.
type Recipe struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	ImagePrompt string         `gorm:"type:text" json:"image_prompt"`
	Ingredients IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	PrepTime    string         `gorm:"size:50" json:"prep_time"`
	CookTime    string         `gorm:"size:50" json:"cook_time"`
	Servings    int            `gorm:"not null;default:2" json:"servings"`
	IsCustom    bool           `gorm:"not null;default:false" json:"is_custom"`
	Status      string         `gorm:"size:20;not null;default:'draft'" json:"status"`
	UserID      *uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`
}
