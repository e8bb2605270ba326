package model

import "time"

// Task is a single item in the planner. Every task belongs to a category;
// the foreign key rejects inserts against missing categories but old rows
// may still point at a deleted one.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	IsComplete  bool      `gorm:"not null;default:false" json:"is_complete"`
	Priority    int       `gorm:"not null" json:"priority"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"-"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
