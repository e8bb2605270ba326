package model

import "time"

// User owns categories, tasks and durations. The password column holds a
// bcrypt hash, never the raw credential.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FName     string    `gorm:"not null" json:"f_name"`
	LName     string    `json:"l_name"`
	Email     string    `gorm:"not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
