// Package models contains the application's domain models.
package models

import (
	"time"
)

// User is an account identity. The nickname is unique and immutable after
// signup; the password column holds a bcrypt hash, never the clear text.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"userId"`
	Nickname  string    `gorm:"unique;not null" json:"nickname"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments  []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}
