package model

import "time"

// Comment is an append-only review on a recipe. Rating must be in 1..5;
// Date is the display string shown next to the author name.
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	UserName  string    `gorm:"size:100;not null" json:"user_name"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Date      string    `gorm:"size:50" json:"date"`
}
