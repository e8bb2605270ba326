package model

import "time"

// Duration is a scheduled time block that repeats on the listed weekdays
// (0–6). Hours are caller-defined units; color is a free-form display hint.
type Duration struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OwnerID       uint      `gorm:"not null;index" json:"owner_id"`
	Owner         *User     `gorm:"foreignKey:OwnerID" json:"-"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"-"`
	StartHour     int       `gorm:"not null" json:"start_hour"`
	EndHour       int       `gorm:"not null" json:"end_hour"`
	RecurringDays []int     `gorm:"serializer:json" json:"recurring_days"`
	Color         string    `json:"color"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
